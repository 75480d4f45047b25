// Package archive экспортирует заметки в zip и импортирует их обратно.
// Формат: index.json, todos.json (если есть) и notes/<id>.html, как на удаленном хранилище.
package archive

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/iudanet/lightnotes/internal/client/dirty"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/internal/validation"
	"github.com/iudanet/lightnotes/pkg/api"
)

// DefaultFileName имя файла экспорта по умолчанию
const DefaultFileName = "lightnotes-backup.zip"

// maxEntrySize ограничение на размер одного файла в архиве
const maxEntrySize = 32 << 20

// ErrInvalidArchive архив не содержит корректного index.json
var ErrInvalidArchive = errors.New("invalid backup archive")

// ImportResult итог импорта
type ImportResult struct {
	Skipped []string // записи индекса с недопустимым идентификатором
	Removed []string // локальные заметки, которых нет в архиве
	Notes   int      // записей индекса импортировано
	Bodies  int      // тел заметок записано
	Todos   bool     // список задач заменен
}

// Export пишет индекс и тела всех заметок в zip. Возвращает число заметок.
func Export(ctx context.Context, w io.Writer, store storage.NoteStore) (int, error) {
	idx, err := store.ListEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list notes: %w", err)
	}

	zw := zip.NewWriter(w)

	data, err := json.Marshal(idx)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := writeEntry(zw, api.IndexPath, data); err != nil {
		return 0, err
	}

	todos, err := store.ReadTodos(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read todos: %w", err)
	}
	if len(todos) > 0 {
		data, err := json.Marshal(todos)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal todos: %w", err)
		}
		if err := writeEntry(zw, api.TodosPath, data); err != nil {
			return 0, err
		}
	}

	for _, e := range idx {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		body, err := store.ReadBody(ctx, e.ID)
		switch {
		case errors.Is(err, storage.ErrNoteNotFound):
			body = models.EmptyNoteBody
		case err != nil:
			return 0, fmt.Errorf("failed to read note %s: %w", e.ID, err)
		}

		if err := writeEntry(zw, api.NotePath(e.ID), []byte(body)); err != nil {
			return 0, err
		}
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish archive: %w", err)
	}
	return len(idx), nil
}

func writeEntry(zw *zip.Writer, name string, data []byte) error {
	f, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Import читает архив, записывает найденные тела и заменяет локальный индекс.
// Импортированные заметки помечаются dirty. Записи без тела в архиве остаются в индексе.
// Архив разбирается целиком до первой записи; заметки, которых нет в архиве,
// удаляются локально после сохранения индекса.
func Import(ctx context.Context, r io.ReaderAt, size int64, store storage.NoteStore, logger *slog.Logger) (*ImportResult, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		files[f.Name] = f
	}

	idxFile, ok := files[api.IndexPath]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidArchive, api.IndexPath)
	}
	data, err := readEntry(idxFile)
	if err != nil {
		return nil, err
	}

	var idx models.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: bad %s: %v", ErrInvalidArchive, api.IndexPath, err)
	}

	res := &ImportResult{}
	imported := make(models.Index, 0, len(idx))
	bodies := make(map[string]string, len(idx))

	for _, e := range idx {
		if err := validation.ValidateNoteID(e.ID); err != nil || imported.Contains(e.ID) {
			res.Skipped = append(res.Skipped, e.ID)
			continue
		}
		imported = append(imported, e)

		f, ok := files[api.NotePath(e.ID)]
		if !ok {
			continue
		}
		body, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		bodies[e.ID] = string(body)
	}

	var todos []models.Todo
	if f, ok := files[api.TodosPath]; ok {
		data, err := readEntry(f)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &todos); err != nil {
			logger.Warn("Skipping malformed todos in archive", "error", err)
			todos = nil
		} else {
			res.Todos = true
		}
	}

	previous, err := store.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list local notes: %w", err)
	}

	tracker := dirty.New(store, logger)
	for _, e := range imported {
		body, ok := bodies[e.ID]
		if !ok {
			continue
		}
		if err := store.WriteBody(ctx, e.ID, body); err != nil {
			return nil, fmt.Errorf("failed to write note %s: %w", e.ID, err)
		}
		if err := tracker.SetDirty(ctx, e.ID, true); err != nil {
			return nil, err
		}
		res.Bodies++
	}

	if err := store.SaveIndex(ctx, imported); err != nil {
		return nil, fmt.Errorf("failed to save index: %w", err)
	}
	res.Notes = len(imported)

	for _, e := range previous {
		if imported.Contains(e.ID) {
			continue
		}
		if err := store.DeleteBody(ctx, e.ID); err != nil {
			logger.Warn("Failed to remove note missing from archive", "note_id", e.ID, "error", err)
			continue
		}
		res.Removed = append(res.Removed, e.ID)
	}

	if res.Todos {
		if err := store.SaveTodos(ctx, todos); err != nil {
			return nil, fmt.Errorf("failed to save todos: %w", err)
		}
	}

	logger.Info("Archive imported", "notes", res.Notes, "bodies", res.Bodies,
		"skipped", len(res.Skipped), "removed", len(res.Removed))
	return res, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, maxEntrySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}
	if len(data) > maxEntrySize {
		return nil, fmt.Errorf("%w: %s is too large", ErrInvalidArchive, f.Name)
	}
	return data, nil
}
