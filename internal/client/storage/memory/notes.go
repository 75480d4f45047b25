// Package memory содержит реализации клиентских хранилищ в памяти процесса.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
)

// NoteStore хранит заметки в памяти
type NoteStore struct {
	bodies map[string]string
	metas  map[string]models.NoteMeta
	index  models.Index
	todos  []models.Todo
	mu     sync.RWMutex
}

// Compile-time check
var _ storage.NoteStore = (*NoteStore)(nil)

// NewNoteStore создает пустое хранилище заметок
func NewNoteStore() *NoteStore {
	return &NoteStore{
		bodies: make(map[string]string),
		metas:  make(map[string]models.NoteMeta),
		index:  models.Index{},
		todos:  []models.Todo{},
	}
}

func (s *NoteStore) ListEntries(ctx context.Context) (models.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.Index, len(s.index))
	copy(out, s.index)
	return out, nil
}

func (s *NoteStore) SaveIndex(ctx context.Context, entries models.Index) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.index = make(models.Index, len(entries))
	copy(s.index, entries)
	return nil
}

func (s *NoteStore) ReadBody(ctx context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.bodies[id]
	if !ok {
		return "", storage.ErrNoteNotFound
	}
	return body, nil
}

func (s *NoteStore) WriteBody(ctx context.Context, id, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bodies[id] = body
	return nil
}

func (s *NoteStore) DeleteBody(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.bodies, id)
	delete(s.metas, id)
	return nil
}

func (s *NoteStore) ReadTodos(ctx context.Context) ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out, nil
}

func (s *NoteStore) SaveTodos(ctx context.Context, todos []models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = make([]models.Todo, len(todos))
	copy(s.todos, todos)
	return nil
}

func (s *NoteStore) GetMeta(ctx context.Context, id string) (models.NoteMeta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.metas[id], nil
}

func (s *NoteStore) SetMeta(ctx context.Context, id string, meta models.NoteMeta) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metas[id] = meta
	return nil
}
