package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/iudanet/lightnotes/internal/client/storage/filestore"
	"github.com/iudanet/lightnotes/internal/validation"
)

// watcher переводит события файловой системы каталога заметок в события демона
type watcher struct {
	w      *fsnotify.Watcher
	logger *slog.Logger
	dir    string
}

// newWatcher наблюдает за корнем каталога (index.json, todos.json) и notes/.
// meta/ не отслеживается: туда пишет только синхронизация.
func newWatcher(dir string, logger *slog.Logger) (*watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, d := range []string{dir, filepath.Join(dir, filestore.NotesDir)} {
		if err := w.Add(d); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}

	return &watcher{w: w, dir: dir, logger: logger}, nil
}

func (w *watcher) run(ctx context.Context, emit func(event)) error {
	defer w.w.Close()

	w.logger.Info("watcher: started", slog.String("root", w.dir))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher: stopped")
			return nil

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}
			if out, ok := classify(w.dir, ev); ok {
				w.logger.Debug("watcher: change", slog.String("path", ev.Name), slog.String("op", ev.Op.String()))
				emit(out)
			}

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher: error", slog.String("error", err.Error()))
		}
	}
}

// classify сопоставляет событие файловой системы с событием демона
func classify(dir string, ev fsnotify.Event) (event, bool) {
	if filestore.IsTempFile(ev.Name) {
		return event{}, false
	}

	rel, err := filepath.Rel(dir, ev.Name)
	if err != nil {
		return event{}, false
	}
	rel = filepath.ToSlash(rel)

	changed := ev.Op&(fsnotify.Create|fsnotify.Write) != 0
	removed := ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0

	switch {
	case rel == filestore.IndexFile && changed:
		return event{kind: evIndex}, true
	case rel == filestore.TodosFile && changed:
		return event{kind: evTodos}, true
	}

	name, ok := strings.CutPrefix(rel, filestore.NotesDir+"/")
	if !ok || !strings.HasSuffix(name, filestore.NoteExt) {
		return event{}, false
	}
	id := strings.TrimSuffix(name, filestore.NoteExt)
	if validation.ValidateNoteID(id) != nil {
		return event{}, false
	}

	switch {
	case changed:
		return event{kind: evNoteEdited, id: id}, true
	case removed:
		return event{kind: evNoteRemoved, id: id}, true
	default:
		return event{}, false
	}
}
