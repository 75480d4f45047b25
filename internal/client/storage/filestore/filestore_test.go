package filestore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return s
}

func TestNew_CreatesLayout(t *testing.T) {
	s := newTestStore(t)

	for _, d := range []string{NotesDir, MetaDir} {
		info, err := os.Stat(filepath.Join(s.Dir(), d))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestIndex_SaveAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	idx, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, idx)
	assert.Empty(t, idx)

	want := models.Index{
		{ID: "a", Title: "First", Created: 1, Modified: 2, Pinned: true, CursorPos: 5},
		{ID: "b", Title: "Second", Created: 3, Modified: 4},
	}
	require.NoError(t, s.SaveIndex(ctx, want))

	got, err := s.ListEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// На диске лежат поля в формате index.json
	raw, err := os.ReadFile(filepath.Join(s.Dir(), IndexFile))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"cursorPos":5`)
}

func TestIndex_Corrupted(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), IndexFile), []byte("{not json"), 0o600))

	idx, err := s.ListEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, idx)
}

func TestBody_ReadWriteDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.ReadBody(ctx, "x")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	require.NoError(t, s.WriteBody(ctx, "x", "<p>hello</p>"))
	body, err := s.ReadBody(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "<p>hello</p>", body)

	require.NoError(t, s.SetMeta(ctx, "x", models.NoteMeta{Dirty: true}))

	require.NoError(t, s.DeleteBody(ctx, "x"))
	_, err = s.ReadBody(ctx, "x")
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	meta, err := s.GetMeta(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, models.NoteMeta{}, meta)

	// Повторное удаление не ошибка
	require.NoError(t, s.DeleteBody(ctx, "x"))
}

func TestBody_EmptyFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.NotePath("e"), nil, 0o600))

	body, err := s.ReadBody(context.Background(), "e")
	require.NoError(t, err)
	assert.Equal(t, models.EmptyNoteBody, body)
}

func TestTodos(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	todos, err := s.ReadTodos(ctx)
	require.NoError(t, err)
	assert.Empty(t, todos)

	want := []models.Todo{{ID: "1", Text: "milk", Created: 10}, {ID: "2", Text: "bread", Done: true}}
	require.NoError(t, s.SaveTodos(ctx, want))

	got, err := s.ReadTodos(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.SaveTodos(ctx, nil))
	raw, err := os.ReadFile(filepath.Join(s.Dir(), TodosFile))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestMeta(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	meta, err := s.GetMeta(ctx, "n")
	require.NoError(t, err)
	assert.False(t, meta.Dirty)

	want := models.NoteMeta{BaseEtag: "abc", BaseBody: "<p>x</p>", Dirty: true}
	require.NoError(t, s.SetMeta(ctx, "n", want))

	got, err := s.GetMeta(ctx, "n")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteBody(context.Background(), "t", "<p>t</p>"))

	entries, err := os.ReadDir(filepath.Join(s.Dir(), NotesDir))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t.html", entries[0].Name())
	assert.False(t, IsTempFile(entries[0].Name()))
	assert.True(t, IsTempFile(".t.html.12345"))
}
