// Package storagetest содержит общие тесты реализаций storage.ObjectStorage.
package storagetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/server/storage"
)

// Run прогоняет общие тесты на хранилище, которое создает newStorage
func Run(t *testing.T, newStorage func(t *testing.T) storage.ObjectStorage) {
	t.Run("PutGetHead", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()

		info, err := s.Put(ctx, "notes/a.html", []byte("<p>a</p>"), "text/html")
		require.NoError(t, err)
		assert.NotEmpty(t, info.ETag)
		assert.Equal(t, int64(8), info.Size)

		head, err := s.Head(ctx, "notes/a.html")
		require.NoError(t, err)
		assert.Equal(t, info.ETag, head.ETag)
		assert.Equal(t, "text/html", head.ContentType)

		obj, err := s.Get(ctx, "notes/a.html")
		require.NoError(t, err)
		assert.Equal(t, "<p>a</p>", string(obj.Body))
		assert.Equal(t, info.ETag, obj.ETag)
	})

	t.Run("NotFound", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()

		_, err := s.Head(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)

		_, err = s.Get(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("OverwriteChangesETag", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()

		first, err := s.Put(ctx, "index.json", []byte("[]"), "application/json")
		require.NoError(t, err)
		second, err := s.Put(ctx, "index.json", []byte(`[{"id":"a"}]`), "application/json")
		require.NoError(t, err)
		assert.NotEqual(t, first.ETag, second.ETag)

		obj, err := s.Get(ctx, "index.json")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"a"}]`, string(obj.Body))
	})

	t.Run("EmptyBody", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()

		_, err := s.Put(ctx, "empty", nil, "application/octet-stream")
		require.NoError(t, err)

		obj, err := s.Get(ctx, "empty")
		require.NoError(t, err)
		assert.Empty(t, obj.Body)
	})

	t.Run("DeleteIdempotent", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()

		_, err := s.Put(ctx, "todos.json", []byte("[]"), "application/json")
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, "todos.json"))
		require.NoError(t, s.Delete(ctx, "todos.json"))

		_, err = s.Head(ctx, "todos.json")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("ListPaginated", func(t *testing.T) {
		s := newStorage(t)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			_, err := s.Put(ctx, fmt.Sprintf("notes/n%d.html", i), []byte("x"), "text/html")
			require.NoError(t, err)
		}
		_, err := s.Put(ctx, "index.json", []byte("[]"), "application/json")
		require.NoError(t, err)
		_, err = s.Put(ctx, "notes_other", []byte("x"), "application/octet-stream")
		require.NoError(t, err)

		var all []string
		cursor := ""
		pages := 0
		for {
			page, err := s.List(ctx, "notes/", cursor, 2)
			require.NoError(t, err)
			all = append(all, page.Keys...)
			pages++
			if page.NextCursor == "" {
				break
			}
			cursor = page.NextCursor
		}

		assert.Equal(t, []string{
			"notes/n0.html", "notes/n1.html", "notes/n2.html", "notes/n3.html", "notes/n4.html",
		}, all)
		assert.Equal(t, 3, pages)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		s := newStorage(t)

		page, err := s.List(context.Background(), "notes/", "", 0)
		require.NoError(t, err)
		assert.Empty(t, page.Keys)
		assert.Empty(t, page.NextCursor)
	})
}
