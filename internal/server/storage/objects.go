package storage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultListLimit размер страницы листинга по умолчанию
const DefaultListLimit = 1000

// ObjectInfo метаданные объекта
type ObjectInfo struct {
	UpdatedAt   time.Time
	Key         string
	ETag        string // тег версии без кавычек
	ContentType string
	Size        int64
}

// Object объект вместе с телом
type Object struct {
	Body []byte
	ObjectInfo
}

// ListPage страница листинга ключей
type ListPage struct {
	NextCursor string // курсор следующей страницы; пусто если страниц больше нет
	Keys       []string
}

// ObjectStorage defines interface for the object bucket behind the endpoint
type ObjectStorage interface {
	// Head returns object metadata
	// Returns ErrObjectNotFound if object doesn't exist
	Head(ctx context.Context, key string) (*ObjectInfo, error)

	// Get returns object with body
	// Returns ErrObjectNotFound if object doesn't exist
	Get(ctx context.Context, key string) (*Object, error)

	// Put creates or replaces object and returns its new metadata
	Put(ctx context.Context, key string, body []byte, contentType string) (*ObjectInfo, error)

	// Delete removes object; deleting an absent object is not an error
	Delete(ctx context.Context, key string) error

	// List returns keys under prefix in lexical order, starting after cursor
	List(ctx context.Context, prefix, cursor string, limit int) (*ListPage, error)
}

// NewETag генерирует тег новой версии объекта
func NewETag() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ValidateKey проверяет ключ объекта: непустой, без ведущего '/', без сегментов '..'
func ValidateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.ContainsRune(key, 0) {
		return ErrInvalidKey
	}
	for _, seg := range strings.Split(key, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}
