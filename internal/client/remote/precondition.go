package remote

import (
	"net/http"

	"github.com/iudanet/lightnotes/pkg/api"
)

type preconditionMode int

const (
	modeUnconditional preconditionMode = iota
	modeMatch
	modeCreateOnly
)

// Precondition условие записи PUT
type Precondition struct {
	tag  string
	mode preconditionMode
}

// Match требует, чтобы текущий тег объекта совпадал с tag (If-Match)
func Match(tag string) Precondition {
	return Precondition{mode: modeMatch, tag: tag}
}

// CreateOnly разрешает запись только если объекта нет (If-None-Match: *)
func CreateOnly() Precondition {
	return Precondition{mode: modeCreateOnly}
}

// Unconditional перезаписывает объект без проверок
func Unconditional() Precondition {
	return Precondition{mode: modeUnconditional}
}

func (p Precondition) apply(h http.Header) {
	switch p.mode {
	case modeMatch:
		h.Set(api.HeaderIfMatch, api.QuoteETag(p.tag))
	case modeCreateOnly:
		h.Set(api.HeaderIfNoneMatch, "*")
	}
}

func (p Precondition) String() string {
	switch p.mode {
	case modeMatch:
		return "if-match " + p.tag
	case modeCreateOnly:
		return "create-only"
	default:
		return "unconditional"
	}
}
