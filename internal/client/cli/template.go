package cli

import (
	"bytes"
	"fmt"
	"text/template"
)

const noteTemplate = `=== {{.Title}} ===
ID:       {{.ID}}
Created:  {{millis .Created}}
Modified: {{millis .Modified}}
{{- if .Pinned }}
Pinned:   yes
{{- end}}
---
`

const statusTemplate = `=== Sync Status ===

Remote:      {{.Remote}}
Status:      {{.Status}}
Notes:       {{.Notes}}
{{- if .Dirty }}
Unsynced:    {{.Dirty}}
{{- end}}
Queued ops:  {{.Pending}}
Last sync:   {{.LastSync}}
Last backup: {{.LastBackup}}
`

var templates = template.Must(template.New("cli").
	Funcs(template.FuncMap{"millis": formatMillis}).
	Parse(`{{define "note"}}` + noteTemplate + `{{end}}{{define "status"}}` + statusTemplate + `{{end}}`))

// render выполняет именованный шаблон
func render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
