// Package notes реализует локальные операции с заметками и задачами.
// Каждое изменение сначала сохраняется локально, затем передается Notifier для синхронизации.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/lightnotes/internal/client/dirty"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/internal/validation"
)

// CopySuffix суффикс заголовка дубликата
const CopySuffix = " (Copy)"

var (
	// ErrNotFound заметки или задачи нет в локальном индексе
	ErrNotFound = errors.New("not found")
	// ErrAmbiguous префикс идентификатора подходит к нескольким записям
	ErrAmbiguous = errors.New("ambiguous id prefix")
)

//go:generate moq -out notifier_mock_test.go . Notifier

// Notifier получает уведомления о локальных изменениях.
// Реализуется сервисом синхронизации.
type Notifier interface {
	SaveNote(ctx context.Context, id string)
	NoteDeleted(ctx context.Context, id string)
	IndexChanged(ctx context.Context)
	TodosChanged(ctx context.Context)
}

// Note запись индекса вместе с телом
type Note struct {
	Body string
	models.NoteEntry
}

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс локального редактирования заметок
type Service interface {
	Create(ctx context.Context, body string) (models.NoteEntry, error)
	Duplicate(ctx context.Context, id string) (models.NoteEntry, error)
	Delete(ctx context.Context, id string) error
	// UpdateBody сохраняет тело; пустой title означает заголовок из тела
	UpdateBody(ctx context.Context, id, body, title string) (models.NoteEntry, error)
	Rename(ctx context.Context, id, title string) error
	TogglePin(ctx context.Context, id string) (bool, error)
	SetCursor(ctx context.Context, id string, pos int) error
	List(ctx context.Context) (models.Index, error)
	Read(ctx context.Context, id string) (*Note, error)
	// Resolve находит полный идентификатор по уникальному префиксу
	Resolve(ctx context.Context, prefix string) (string, error)
	// ExternalEdit учитывает изменение файла заметки, сделанное вне сервиса.
	// Возвращает false, если тело совпадает с подтвержденной удаленно версией.
	ExternalEdit(ctx context.Context, id string) (bool, error)

	Todos(ctx context.Context) ([]models.Todo, error)
	AddTodo(ctx context.Context, text string) (models.Todo, error)
	ToggleTodo(ctx context.Context, id string) (models.Todo, error)
	RemoveTodo(ctx context.Context, id string) error
}

type service struct {
	store    storage.NoteStore
	tracker  *dirty.Tracker
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
	// индекс читается и перезаписывается целиком
	mu sync.Mutex
}

// Option настройка сервиса
type Option func(*service)

// WithClock задает источник времени
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService создает сервис заметок. notifier может быть nil для работы без синхронизации.
func NewService(store storage.NoteStore, notifier Notifier, logger *slog.Logger, opts ...Option) Service {
	s := &service{
		store:    store,
		tracker:  dirty.New(store, logger),
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) millis() int64 {
	return s.now().UnixMilli()
}

// Create создает заметку. Пустое тело заменяется на пустой абзац.
func (s *service) Create(ctx context.Context, body string) (models.NoteEntry, error) {
	if strings.TrimSpace(body) == "" {
		body = models.EmptyNoteBody
	}

	now := s.millis()
	entry := models.NoteEntry{
		ID:       uuid.New().String(),
		Title:    models.DeriveTitle(body),
		Created:  now,
		Modified: now,
	}

	if err := s.insert(ctx, entry, body); err != nil {
		return models.NoteEntry{}, err
	}

	s.logger.Info("Note created", "note_id", entry.ID)
	if s.notifier != nil {
		s.notifier.SaveNote(ctx, entry.ID)
	}
	return entry, nil
}

// Duplicate копирует тело заметки в новую заметку с суффиксом " (Copy)"
func (s *service) Duplicate(ctx context.Context, id string) (models.NoteEntry, error) {
	src, err := s.Read(ctx, id)
	if err != nil {
		return models.NoteEntry{}, err
	}

	now := s.millis()
	entry := models.NoteEntry{
		ID:       uuid.New().String(),
		Title:    src.Title + CopySuffix,
		Created:  now,
		Modified: now,
	}

	if err := s.insert(ctx, entry, src.Body); err != nil {
		return models.NoteEntry{}, err
	}

	s.logger.Info("Note duplicated", "source_id", id, "note_id", entry.ID)
	if s.notifier != nil {
		s.notifier.SaveNote(ctx, entry.ID)
	}
	return entry, nil
}

// insert пишет тело и добавляет запись в начало индекса
func (s *service) insert(ctx context.Context, entry models.NoteEntry, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.WriteBody(ctx, entry.ID, body); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	if err := s.tracker.SetDirty(ctx, entry.ID, true); err != nil {
		return err
	}

	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list notes: %w", err)
	}
	idx = append(models.Index{entry}, idx...)

	if err := s.store.SaveIndex(ctx, idx); err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}
	return nil
}

// Delete удаляет заметку из индекса и тело с метаданными
func (s *service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to list notes: %w", err)
	}
	if !idx.Contains(id) {
		s.mu.Unlock()
		return fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	if err := s.store.SaveIndex(ctx, idx.Remove(id)); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to save index: %w", err)
	}
	if err := s.store.DeleteBody(ctx, id); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to delete note: %w", err)
	}
	s.mu.Unlock()

	s.logger.Info("Note deleted", "note_id", id)
	if s.notifier != nil {
		s.notifier.NoteDeleted(ctx, id)
	}
	return nil
}

func (s *service) UpdateBody(ctx context.Context, id, body, title string) (models.NoteEntry, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return models.NoteEntry{}, err
	}
	if title == "" {
		title = models.DeriveTitle(body)
	}

	entry, err := s.updateEntry(ctx, id, func(e *models.NoteEntry) error {
		if err := s.store.WriteBody(ctx, id, body); err != nil {
			return fmt.Errorf("failed to write note: %w", err)
		}
		if err := s.tracker.SetDirty(ctx, id, true); err != nil {
			return err
		}
		e.Title = title
		e.Modified = s.millis()
		return nil
	})
	if err != nil {
		return models.NoteEntry{}, err
	}

	s.logger.Debug("Note body updated", "note_id", id, "size", len(body))
	if s.notifier != nil {
		s.notifier.SaveNote(ctx, id)
	}
	return entry, nil
}

func (s *service) Rename(ctx context.Context, id, title string) error {
	if err := validation.ValidateTitle(title); err != nil {
		return err
	}

	_, err := s.updateEntry(ctx, id, func(e *models.NoteEntry) error {
		e.Title = title
		e.Modified = s.millis()
		return nil
	})
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.IndexChanged(ctx)
	}
	return nil
}

// TogglePin переключает закрепление и возвращает новое значение
func (s *service) TogglePin(ctx context.Context, id string) (bool, error) {
	entry, err := s.updateEntry(ctx, id, func(e *models.NoteEntry) error {
		e.Pinned = !e.Pinned
		return nil
	})
	if err != nil {
		return false, err
	}

	if s.notifier != nil {
		s.notifier.IndexChanged(ctx)
	}
	return entry.Pinned, nil
}

func (s *service) SetCursor(ctx context.Context, id string, pos int) error {
	if pos < 0 {
		pos = 0
	}

	changed := false
	_, err := s.updateEntry(ctx, id, func(e *models.NoteEntry) error {
		changed = e.CursorPos != pos
		e.CursorPos = pos
		return nil
	})
	if err != nil {
		return err
	}

	if changed && s.notifier != nil {
		s.notifier.IndexChanged(ctx)
	}
	return nil
}

// updateEntry изменяет запись индекса под блокировкой
func (s *service) updateEntry(ctx context.Context, id string, fn func(e *models.NoteEntry) error) (models.NoteEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		return models.NoteEntry{}, fmt.Errorf("failed to list notes: %w", err)
	}
	pos := idx.Find(id)
	if pos < 0 {
		return models.NoteEntry{}, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	if err := fn(&idx[pos]); err != nil {
		return models.NoteEntry{}, err
	}

	if err := s.store.SaveIndex(ctx, idx); err != nil {
		return models.NoteEntry{}, fmt.Errorf("failed to save index: %w", err)
	}
	return idx[pos], nil
}

// List возвращает индекс в порядке отображения
func (s *service) List(ctx context.Context) (models.Index, error) {
	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	idx.Sort()
	return idx, nil
}

// Read возвращает заметку. Отсутствующее тело читается как пустая заметка.
func (s *service) Read(ctx context.Context, id string) (*Note, error) {
	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	pos := idx.Find(id)
	if pos < 0 {
		return nil, fmt.Errorf("note %s: %w", id, ErrNotFound)
	}

	body, err := s.store.ReadBody(ctx, id)
	switch {
	case errors.Is(err, storage.ErrNoteNotFound):
		body = models.EmptyNoteBody
	case err != nil:
		return nil, fmt.Errorf("failed to read note: %w", err)
	}

	return &Note{NoteEntry: idx[pos], Body: body}, nil
}

func (s *service) Resolve(ctx context.Context, prefix string) (string, error) {
	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list notes: %w", err)
	}
	return resolve(idx.IDs(), prefix)
}

func (s *service) ExternalEdit(ctx context.Context, id string) (bool, error) {
	if err := validation.ValidateNoteID(id); err != nil {
		return false, err
	}

	body, err := s.store.ReadBody(ctx, id)
	if errors.Is(err, storage.ErrNoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read note: %w", err)
	}

	base, err := s.tracker.Base(ctx, id)
	if err != nil {
		return false, err
	}
	// Собственная запись синхронизации или уже учтенная правка
	if !base.Dirty && body == base.BaseBody {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to list notes: %w", err)
	}

	now := s.millis()
	if pos := idx.Find(id); pos >= 0 {
		// Заголовок, заданный вручную, не трогаем
		if idx[pos].Title == models.DeriveTitle(base.BaseBody) {
			idx[pos].Title = models.DeriveTitle(body)
		}
		idx[pos].Modified = now
	} else {
		s.logger.Info("Adopting note file missing from index", "note_id", id)
		idx = append(models.Index{{
			ID:       id,
			Title:    models.DeriveTitle(body),
			Created:  now,
			Modified: now,
		}}, idx...)
	}

	if err := s.store.SaveIndex(ctx, idx); err != nil {
		return false, fmt.Errorf("failed to save index: %w", err)
	}
	if err := s.tracker.SetDirty(ctx, id, true); err != nil {
		return false, err
	}
	return true, nil
}

func (s *service) Todos(ctx context.Context) ([]models.Todo, error) {
	todos, err := s.store.ReadTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}
	return todos, nil
}

func (s *service) AddTodo(ctx context.Context, text string) (models.Todo, error) {
	text = strings.TrimSpace(text)
	if err := validation.ValidateTodoText(text); err != nil {
		return models.Todo{}, err
	}

	todo := models.Todo{
		ID:      uuid.New().String(),
		Text:    text,
		Created: s.millis(),
	}

	err := s.updateTodos(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		return append(todos, todo), nil
	})
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// ToggleTodo переключает отметку выполнения; id может быть уникальным префиксом
func (s *service) ToggleTodo(ctx context.Context, id string) (models.Todo, error) {
	var out models.Todo
	err := s.updateTodos(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		i, err := findTodo(todos, id)
		if err != nil {
			return nil, err
		}
		todos[i].Done = !todos[i].Done
		out = todos[i]
		return todos, nil
	})
	return out, err
}

func (s *service) RemoveTodo(ctx context.Context, id string) error {
	return s.updateTodos(ctx, func(todos []models.Todo) ([]models.Todo, error) {
		i, err := findTodo(todos, id)
		if err != nil {
			return nil, err
		}
		return append(todos[:i], todos[i+1:]...), nil
	})
}

func (s *service) updateTodos(ctx context.Context, fn func([]models.Todo) ([]models.Todo, error)) error {
	s.mu.Lock()
	todos, err := s.store.ReadTodos(ctx)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to read todos: %w", err)
	}

	todos, err = fn(todos)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	if err := s.store.SaveTodos(ctx, todos); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("failed to save todos: %w", err)
	}
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.TodosChanged(ctx)
	}
	return nil
}

func findTodo(todos []models.Todo, id string) (int, error) {
	ids := make([]string, len(todos))
	for i, t := range todos {
		ids[i] = t.ID
	}
	full, err := resolve(ids, id)
	if err != nil {
		return -1, err
	}
	for i, t := range todos {
		if t.ID == full {
			return i, nil
		}
	}
	return -1, fmt.Errorf("todo %s: %w", id, ErrNotFound)
}

// resolve ищет точное совпадение, затем единственный идентификатор с префиксом
func resolve(ids []string, prefix string) (string, error) {
	if prefix == "" {
		return "", fmt.Errorf("empty id: %w", ErrNotFound)
	}

	var match string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
	}
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%s: %w", prefix, ErrAmbiguous)
		}
		match = id
	}
	if match == "" {
		return "", fmt.Errorf("%s: %w", prefix, ErrNotFound)
	}
	return match, nil
}
