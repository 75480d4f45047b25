// Package memory реализует хранилище объектов в памяти процесса.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/lightnotes/internal/server/storage"
)

// Storage хранит объекты в памяти
type Storage struct {
	objects map[string]*storage.Object
	mu      sync.RWMutex
}

// Compile-time check
var _ storage.ObjectStorage = (*Storage)(nil)

// New создает пустое хранилище
func New() *Storage {
	return &Storage{objects: make(map[string]*storage.Object)}
}

func (s *Storage) Head(ctx context.Context, key string) (*storage.ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	info := obj.ObjectInfo
	return &info, nil
}

func (s *Storage) Get(ctx context.Context, key string) (*storage.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	out := &storage.Object{ObjectInfo: obj.ObjectInfo, Body: make([]byte, len(obj.Body))}
	copy(out.Body, obj.Body)
	return out, nil
}

func (s *Storage) Put(ctx context.Context, key string, body []byte, contentType string) (*storage.ObjectInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := &storage.Object{
		ObjectInfo: storage.ObjectInfo{
			Key:         key,
			ETag:        storage.NewETag(),
			ContentType: contentType,
			Size:        int64(len(body)),
			UpdatedAt:   time.Now().UTC(),
		},
		Body: make([]byte, len(body)),
	}
	copy(obj.Body, body)
	s.objects[key] = obj

	info := obj.ObjectInfo
	return &info, nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.objects, key)
	return nil
}

func (s *Storage) List(ctx context.Context, prefix, cursor string, limit int) (*storage.ListPage, error) {
	if limit <= 0 {
		limit = storage.DefaultListLimit
	}

	s.mu.RLock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) && k > cursor {
			keys = append(keys, k)
		}
	}
	s.mu.RUnlock()

	sort.Strings(keys)

	page := &storage.ListPage{Keys: keys}
	if len(keys) > limit {
		page.Keys = keys[:limit]
		page.NextCursor = keys[limit-1]
	}
	return page, nil
}
