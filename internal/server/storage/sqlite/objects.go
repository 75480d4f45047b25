package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/lightnotes/internal/server/storage"
)

// Compile-time check
var _ storage.ObjectStorage = (*Storage)(nil)

// Head returns object metadata
func (s *Storage) Head(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	query := `
		SELECT key, etag, content_type, size, updated_at
		FROM objects
		WHERE key = ?
	`

	var (
		info      storage.ObjectInfo
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&info.Key,
		&info.ETag,
		&info.ContentType,
		&info.Size,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to head object: %w", err)
	}
	info.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return &info, nil
}

// Get returns object with body
func (s *Storage) Get(ctx context.Context, key string) (*storage.Object, error) {
	query := `
		SELECT key, body, etag, content_type, size, updated_at
		FROM objects
		WHERE key = ?
	`

	var (
		obj       storage.Object
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, query, key).Scan(
		&obj.Key,
		&obj.Body,
		&obj.ETag,
		&obj.ContentType,
		&obj.Size,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	obj.UpdatedAt = time.Unix(0, updatedAt).UTC()
	if obj.Body == nil {
		obj.Body = []byte{}
	}

	return &obj, nil
}

// Put creates or replaces object
func (s *Storage) Put(ctx context.Context, key string, body []byte, contentType string) (*storage.ObjectInfo, error) {
	if body == nil {
		body = []byte{}
	}

	info := &storage.ObjectInfo{
		Key:         key,
		ETag:        storage.NewETag(),
		ContentType: contentType,
		Size:        int64(len(body)),
		UpdatedAt:   time.Now().UTC(),
	}

	query := `
		INSERT INTO objects (key, body, etag, content_type, size, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			body = excluded.body,
			etag = excluded.etag,
			content_type = excluded.content_type,
			size = excluded.size,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		info.Key,
		body,
		info.ETag,
		info.ContentType,
		info.Size,
		info.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to put object: %w", err)
	}

	return info, nil
}

// Delete removes object; absent object is not an error
func (s *Storage) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM objects WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// List returns keys under prefix, ordered, starting after cursor
func (s *Storage) List(ctx context.Context, prefix, cursor string, limit int) (*storage.ListPage, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	// LIKE с экранированием, чтобы '_' и '%' в префиксе не были шаблоном
	query := `
		SELECT key
		FROM objects
		WHERE key LIKE ? ESCAPE '\' AND key > ?
		ORDER BY key
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, escapeLike(prefix)+"%", cursor, limit+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	defer rows.Close()

	keys := make([]string, 0)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	page := &storage.ListPage{Keys: keys}
	if len(keys) > limit {
		page.Keys = keys[:limit]
		page.NextCursor = keys[limit-1]
	}
	return page, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
