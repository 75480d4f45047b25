package sqlite

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lightnotes/internal/server/storage"
	"github.com/iudanet/lightnotes/internal/server/storage/storagetest"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), MemoryPath, setupTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestStorage(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.ObjectStorage {
		return setupTestStorage(t)
	})
}

func TestNew_FileDatabase(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "objects.db")

	s, err := New(ctx, dbPath, setupTestLogger())
	require.NoError(t, err)

	info, err := s.Put(ctx, "index.json", []byte("[]"), "application/json")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Повторное открытие не применяет миграции заново и сохраняет данные
	s, err = New(ctx, dbPath, setupTestLogger())
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	head, err := s.Head(ctx, "index.json")
	require.NoError(t, err)
	assert.Equal(t, info.ETag, head.ETag)
}

func TestList_PrefixWithWildcards(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	_, err := s.Put(ctx, "a_b/1", []byte("x"), "application/octet-stream")
	require.NoError(t, err)
	_, err = s.Put(ctx, "axb/1", []byte("x"), "application/octet-stream")
	require.NoError(t, err)

	page, err := s.List(ctx, "a_b/", "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_b/1"}, page.Keys)
}

func TestMigrations_TableExists(t *testing.T) {
	s := setupTestStorage(t)

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='objects'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "objects", name)
}
