package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
)

// Имена файлов и каталогов внутри каталога заметок
const (
	IndexFile = "index.json"
	TodosFile = "todos.json"
	NotesDir  = "notes"
	MetaDir   = "meta"

	NoteExt = ".html"
)

// Store хранит заметки в каталоге:
//
//	index.json         индекс заметок
//	notes/<id>.html    тела заметок
//	meta/<id>.json     метаданные синхронизации
//	todos.json         список задач
type Store struct {
	logger *slog.Logger
	dir    string
	mu     sync.Mutex
}

// Compile-time check
var _ storage.NoteStore = (*Store)(nil)

// New создает хранилище в каталоге dir, создавая недостающие подкаталоги
func New(dir string, logger *slog.Logger) (*Store, error) {
	for _, d := range []string{dir, filepath.Join(dir, NotesDir), filepath.Join(dir, MetaDir)} {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	return &Store{
		dir:    dir,
		logger: logger,
	}, nil
}

// Dir возвращает корневой каталог хранилища
func (s *Store) Dir() string {
	return s.dir
}

// NotePath возвращает путь к файлу тела заметки
func (s *Store) NotePath(id string) string {
	return filepath.Join(s.dir, NotesDir, id+NoteExt)
}

func (s *Store) metaPath(id string) string {
	return filepath.Join(s.dir, MetaDir, id+".json")
}

// ListEntries читает index.json. Поврежденный индекс считается пустым.
func (s *Store) ListEntries(ctx context.Context) (models.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, IndexFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Index{}, nil
		}
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	var idx models.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		s.logger.Warn("Corrupted local index, starting from empty", "error", err)
		return models.Index{}, nil
	}
	if idx == nil {
		idx = models.Index{}
	}

	return idx, nil
}

// SaveIndex перезаписывает index.json
func (s *Store) SaveIndex(ctx context.Context, entries models.Index) error {
	if entries == nil {
		entries = models.Index{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(filepath.Join(s.dir, IndexFile), data); err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}
	return nil
}

// ReadBody читает тело заметки
func (s *Store) ReadBody(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.NotePath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", storage.ErrNoteNotFound
		}
		return "", fmt.Errorf("failed to read note %s: %w", id, err)
	}

	// Пустой файл читается как пустая заметка
	if len(data) == 0 {
		return models.EmptyNoteBody, nil
	}

	return string(data), nil
}

// WriteBody записывает тело заметки
func (s *Store) WriteBody(ctx context.Context, id, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.NotePath(id), []byte(body)); err != nil {
		return fmt.Errorf("failed to write note %s: %w", id, err)
	}
	return nil
}

// DeleteBody удаляет тело заметки и ее метаданные
func (s *Store) DeleteBody(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range []string{s.NotePath(id), s.metaPath(id)} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to delete %s: %w", p, err)
		}
	}
	return nil
}

// ReadTodos читает todos.json; отсутствующий или поврежденный файл дает пустой список
func (s *Store) ReadTodos(ctx context.Context) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, TodosFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Todo{}, nil
		}
		return nil, fmt.Errorf("failed to read todos: %w", err)
	}

	var todos []models.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		s.logger.Warn("Corrupted local todos, starting from empty", "error", err)
		return []models.Todo{}, nil
	}
	if todos == nil {
		todos = []models.Todo{}
	}

	return todos, nil
}

// SaveTodos перезаписывает todos.json
func (s *Store) SaveTodos(ctx context.Context, todos []models.Todo) error {
	if todos == nil {
		todos = []models.Todo{}
	}

	data, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("failed to marshal todos: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(filepath.Join(s.dir, TodosFile), data); err != nil {
		return fmt.Errorf("failed to save todos: %w", err)
	}
	return nil
}

// GetMeta читает meta/<id>.json; отсутствие файла дает нулевое значение
func (s *Store) GetMeta(ctx context.Context, id string) (models.NoteMeta, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var meta models.NoteMeta

	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return meta, nil
		}
		return meta, fmt.Errorf("failed to read meta %s: %w", id, err)
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		return models.NoteMeta{}, fmt.Errorf("failed to unmarshal meta %s: %w", id, err)
	}

	return meta, nil
}

// SetMeta перезаписывает meta/<id>.json
func (s *Store) SetMeta(ctx context.Context, id string, meta models.NoteMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to marshal meta: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeFileAtomic(s.metaPath(id), data); err != nil {
		return fmt.Errorf("failed to save meta %s: %w", id, err)
	}
	return nil
}

// IsTempFile сообщает, является ли имя временным файлом атомарной записи
func IsTempFile(name string) bool {
	return strings.HasPrefix(filepath.Base(name), ".")
}

// writeFileAtomic пишет во временный файл рядом с целевым и переименовывает его
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, 0o600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
