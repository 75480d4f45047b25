package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/client/storage/memory"
	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seed(t *testing.T) *memory.NoteStore {
	t.Helper()
	ctx := context.Background()
	s := memory.NewNoteStore()
	require.NoError(t, s.SaveIndex(ctx, models.Index{
		{ID: "a", Title: "Alpha", Created: 1, Modified: 2},
		{ID: "b", Title: "Beta", Created: 3, Modified: 4, Pinned: true},
	}))
	require.NoError(t, s.WriteBody(ctx, "a", "<p>alpha</p>"))
	require.NoError(t, s.SaveTodos(ctx, []models.Todo{{ID: "t1", Text: "milk"}}))
	return s
}

// buildZip собирает архив из пар имя/содержимое
func buildZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		f, err := zw.Create(name)
		require.NoError(t, err)
		_, err = f.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	n, err := Export(ctx, &buf, seed(t))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	got := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		got[f.Name] = string(data)
	}

	assert.Len(t, got, 4)
	assert.Equal(t, "<p>alpha</p>", got[api.NotePath("a")])
	assert.Equal(t, models.EmptyNoteBody, got[api.NotePath("b")], "missing body exported as empty note")

	var idx models.Index
	require.NoError(t, json.Unmarshal([]byte(got[api.IndexPath]), &idx))
	assert.Equal(t, []string{"a", "b"}, idx.IDs())
	assert.Contains(t, got[api.TodosPath], "milk")
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	_, err := Export(ctx, &buf, seed(t))
	require.NoError(t, err)

	dst := memory.NewNoteStore()
	res, err := Import(ctx, bytes.NewReader(buf.Bytes()), int64(buf.Len()), dst, testLogger())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Notes)
	assert.Equal(t, 2, res.Bodies)
	assert.True(t, res.Todos)
	assert.Empty(t, res.Skipped)

	idx, err := dst.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, idx, 2)
	assert.True(t, idx[1].Pinned)

	body, err := dst.ReadBody(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "<p>alpha</p>", body)

	meta, err := dst.GetMeta(ctx, "a")
	require.NoError(t, err)
	assert.True(t, meta.Dirty)

	todos, err := dst.ReadTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "milk", todos[0].Text)
}

func TestImport(t *testing.T) {
	tests := []struct {
		files       map[string]string
		name        string
		wantIDs     []string
		wantSkipped []string
		wantBodies  int
		wantErr     bool
	}{
		{
			name:    "missing index",
			files:   map[string]string{"notes/a.html": "<p>a</p>"},
			wantErr: true,
		},
		{
			name:    "malformed index",
			files:   map[string]string{api.IndexPath: "{"},
			wantErr: true,
		},
		{
			name: "entry without body kept",
			files: map[string]string{
				api.IndexPath:     `[{"id":"a","title":"A"},{"id":"b","title":"B"}]`,
				api.NotePath("a"): "<p>a</p>",
			},
			wantIDs:    []string{"a", "b"},
			wantBodies: 1,
		},
		{
			name: "invalid and duplicate ids skipped",
			files: map[string]string{
				api.IndexPath:     `[{"id":"../x"},{"id":"a"},{"id":"a"}]`,
				api.NotePath("a"): "<p>a</p>",
			},
			wantIDs:     []string{"a"},
			wantSkipped: []string{"../x", "a"},
			wantBodies:  1,
		},
		{
			name: "body without index entry ignored",
			files: map[string]string{
				api.IndexPath:          `[]`,
				api.NotePath("orphan"): "<p>o</p>",
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.NewNoteStore()
			r := buildZip(t, tt.files)

			res, err := Import(ctx, r, r.Size(), store, testLogger())
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArchive)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBodies, res.Bodies)
			assert.Equal(t, tt.wantSkipped, res.Skipped)
			assert.False(t, res.Todos)

			idx, err := store.ListEntries(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, idx.IDs())

			_, err = store.ReadBody(ctx, "orphan")
			assert.Error(t, err)
		})
	}
}

func TestImport_NotAZip(t *testing.T) {
	r := bytes.NewReader([]byte("plain text"))
	_, err := Import(context.Background(), r, r.Size(), memory.NewNoteStore(), testLogger())
	assert.ErrorIs(t, err, ErrInvalidArchive)
}

func TestImport_MalformedTodosIgnored(t *testing.T) {
	ctx := context.Background()
	store := memory.NewNoteStore()
	require.NoError(t, store.SaveTodos(ctx, []models.Todo{{ID: "keep"}}))

	r := buildZip(t, map[string]string{
		api.IndexPath: `[]`,
		api.TodosPath: `not json`,
	})
	res, err := Import(ctx, r, r.Size(), store, testLogger())
	require.NoError(t, err)
	assert.False(t, res.Todos)

	todos, err := store.ReadTodos(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "keep", todos[0].ID)
}

func TestImport_RemovesNotesMissingFromArchive(t *testing.T) {
	ctx := context.Background()
	store := seed(t)
	require.NoError(t, store.SetMeta(ctx, "a", models.NoteMeta{BaseEtag: "t1", BaseBody: "<p>alpha</p>"}))

	r := buildZip(t, map[string]string{
		api.IndexPath:     `[{"id":"c","title":"Gamma"}]`,
		api.NotePath("c"): "<p>gamma</p>",
	})
	res, err := Import(ctx, r, r.Size(), store, testLogger())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, res.Removed)

	idx, err := store.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, idx.IDs())

	_, err = store.ReadBody(ctx, "a")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
	meta, err := store.GetMeta(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, models.NoteMeta{}, meta, "sync metadata removed with the body")
}

func TestImport_UnreadableEntryLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := seed(t)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(api.IndexPath)
	require.NoError(t, err)
	_, err = f.Write([]byte(`[{"id":"a"},{"id":"c"}]`))
	require.NoError(t, err)
	f, err = zw.Create(api.NotePath("a"))
	require.NoError(t, err)
	_, err = f.Write([]byte("<p>replaced</p>"))
	require.NoError(t, err)
	// неизвестный метод сжатия: запись не открывается
	raw, err := zw.CreateRaw(&zip.FileHeader{Name: api.NotePath("c"), Method: 99, CompressedSize64: 7, UncompressedSize64: 7})
	require.NoError(t, err)
	_, err = raw.Write([]byte("garbage"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r := bytes.NewReader(buf.Bytes())
	_, err = Import(ctx, r, r.Size(), store, testLogger())
	require.Error(t, err)

	idx, err := store.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, idx.IDs())

	body, err := store.ReadBody(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "<p>alpha</p>", body)
	meta, err := store.GetMeta(ctx, "a")
	require.NoError(t, err)
	assert.False(t, meta.Dirty)
}
