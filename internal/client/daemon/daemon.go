// Package daemon запускает фоновую синхронизацию каталога заметок.
// Все вызовы сервиса синхронизации выполняются из одной горутины цикла событий.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	stdsync "sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/lightnotes/internal/client/notes"
	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/client/sync"
	"github.com/iudanet/lightnotes/pkg/api"
)

// Значения по умолчанию
const (
	DefaultDrainInterval = 15 * time.Second
	DefaultProbeInterval = 30 * time.Second
	DefaultDebounce      = 400 * time.Millisecond
	DefaultRetryDelay    = 2 * time.Second
)

// Editor локальные операции, которые демон выполняет по событиям файловой системы
type Editor interface {
	ExternalEdit(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) error
	Read(ctx context.Context, id string) (*notes.Note, error)
}

// Prober проверяет доступность удаленного хранилища
type Prober interface {
	Configured() bool
	Probe(ctx context.Context, p string) (tag string, found bool, err error)
}

// Config параметры демона
type Config struct {
	// Dir каталог заметок; пустой отключает наблюдение за файлами
	Dir           string
	DrainInterval time.Duration
	ProbeInterval time.Duration
	Debounce      time.Duration
	RetryDelay    time.Duration
	// Signals включает обработку SIGUSR1 (focus)
	Signals bool
}

type eventKind int

const (
	evDrain eventKind = iota
	evProbe
	evFocus
	evNoteEdited
	evNoteRemoved
	evIndex
	evTodos
)

func (k eventKind) String() string {
	switch k {
	case evDrain:
		return "drain"
	case evProbe:
		return "probe"
	case evFocus:
		return "focus"
	case evNoteEdited:
		return "note_edited"
	case evNoteRemoved:
		return "note_removed"
	case evIndex:
		return "index"
	case evTodos:
		return "todos"
	default:
		return "unknown"
	}
}

type event struct {
	kind eventKind
	id   string
}

// Daemon цикл фоновой синхронизации
type Daemon struct {
	syncer   sync.Service
	editor   Editor
	prober   Prober
	meta     storage.MetadataStorage
	logger   *slog.Logger
	events   chan event
	wake     chan struct{}
	done     chan struct{}
	debounce *debouncer
	now      func() time.Time
	cfg      Config
	online   bool
	doneOnce stdsync.Once
}

// New создает демон. meta может быть nil.
func New(syncer sync.Service, editor Editor, prober Prober, meta storage.MetadataStorage, cfg Config, logger *slog.Logger) *Daemon {
	if cfg.DrainInterval <= 0 {
		cfg.DrainInterval = DefaultDrainInterval
	}
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = DefaultProbeInterval
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}

	d := &Daemon{
		syncer: syncer,
		editor: editor,
		prober: prober,
		meta:   meta,
		logger: logger,
		cfg:    cfg,
		events: make(chan event, 64),
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		now:    time.Now,
	}
	d.debounce = newDebouncer(cfg.Debounce, d.send)
	return d
}

// Wake просит повторить очередь в ближайшее время. Не блокирует.
func (d *Daemon) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Focus запрашивает focus синхронизацию
func (d *Daemon) Focus() {
	d.send(event{kind: evFocus})
}

// Flush применяет отложенные правки заметок немедленно.
// Вызывается сервисом синхронизации перед push, то есть из цикла событий.
func (d *Daemon) Flush(ctx context.Context) error {
	var errs []error
	for _, ev := range d.debounce.take(evNoteEdited) {
		if _, err := d.editor.ExternalEdit(ctx, ev.id); err != nil {
			errs = append(errs, fmt.Errorf("note %s: %w", ev.id, err))
		}
	}
	return errors.Join(errs...)
}

// send передает событие в цикл; после остановки цикла события отбрасываются
func (d *Daemon) send(ev event) {
	select {
	case d.events <- ev:
	case <-d.done:
	}
}

// Run выполняет начальную синхронизацию и обрабатывает события до отмены ctx
func (d *Daemon) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	// Watcher стартует до начальной синхронизации, чтобы не пропустить правки
	if d.cfg.Dir != "" {
		w, err := newWatcher(d.cfg.Dir, d.logger)
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", d.cfg.Dir, err)
		}
		g.Go(func() error {
			return w.run(gCtx, func(ev event) {
				d.debounce.push(debounceKey(ev), ev)
			})
		})
	}

	if d.cfg.Signals {
		g.Go(func() error {
			return d.handleSignals(gCtx)
		})
	}

	g.Go(func() error {
		return d.logStatus(gCtx)
	})

	g.Go(func() error {
		defer d.stop()
		return d.loop(gCtx)
	})

	err := g.Wait()
	d.debounce.stopAll()
	return err
}

func (d *Daemon) stop() {
	d.doneOnce.Do(func() {
		close(d.done)
	})
}

// loop единственная горутина, вызывающая сервис синхронизации
func (d *Daemon) loop(ctx context.Context) error {
	d.logger.Info("Sync daemon started", "dir", d.cfg.Dir)

	res := d.syncer.StartupSync(ctx)
	d.online = !res.Offline && d.prober.Configured()
	d.record(ctx, res)

	drain := time.NewTicker(d.cfg.DrainInterval)
	defer drain.Stop()
	probe := time.NewTicker(d.cfg.ProbeInterval)
	defer probe.Stop()

	var retry <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Sync daemon stopped")
			return nil

		case <-drain.C:
			d.drain(ctx)

		case <-probe.C:
			d.probe(ctx)

		case <-d.wake:
			if retry == nil {
				retry = time.After(d.cfg.RetryDelay)
			}

		case <-retry:
			retry = nil
			d.drain(ctx)

		case ev := <-d.events:
			d.handle(ctx, ev)
		}
	}
}

func (d *Daemon) handle(ctx context.Context, ev event) {
	d.logger.Debug("Daemon event", "kind", ev.kind, "note_id", ev.id)

	switch ev.kind {
	case evDrain:
		d.drain(ctx)
	case evProbe:
		d.probe(ctx)
	case evFocus:
		if res := d.syncer.Focus(ctx); res != nil {
			d.record(ctx, res)
		}
	case evNoteEdited:
		changed, err := d.editor.ExternalEdit(ctx, ev.id)
		if err != nil {
			d.logger.Warn("Failed to apply note edit", "note_id", ev.id, "error", err)
			return
		}
		if changed {
			d.syncer.SaveNote(ctx, ev.id)
		}
	case evNoteRemoved:
		d.noteRemoved(ctx, ev.id)
	case evIndex:
		d.syncer.IndexChanged(ctx)
	case evTodos:
		d.syncer.TodosChanged(ctx)
	}
}

// noteRemoved обрабатывает удаление файла заметки
func (d *Daemon) noteRemoved(ctx context.Context, id string) {
	if d.cfg.Dir != "" {
		// Атомарная запись могла вернуть файл на место
		if _, err := os.Stat(filepath.Join(d.cfg.Dir, filepath.FromSlash(api.NotePath(id)))); err == nil {
			d.handle(ctx, event{kind: evNoteEdited, id: id})
			return
		}
	}

	if _, err := d.editor.Read(ctx, id); err == nil {
		// Заметка еще в индексе: удаляем ее через сервис, он сообщит синхронизации
		if err := d.editor.Delete(ctx, id); err != nil {
			d.logger.Warn("Failed to delete note", "note_id", id, "error", err)
		}
		return
	}

	// Индекс уже изменен другим процессом
	d.syncer.NoteDeleted(ctx, id)
}

func (d *Daemon) drain(ctx context.Context) {
	res, err := d.syncer.DrainQueue(ctx)
	if err != nil {
		d.logger.Warn("Queue drain failed", "error", err)
		return
	}
	if res.Replayed > 0 || res.Dropped > 0 {
		d.logger.Info("Queue drained", "replayed", res.Replayed, "dropped", res.Dropped, "remaining", res.Remaining)
	}
}

// probe проверяет связь через HEAD index.json; переход offline→online запускает разбор очереди
func (d *Daemon) probe(ctx context.Context) {
	if !d.prober.Configured() {
		return
	}

	_, _, err := d.prober.Probe(ctx, api.IndexPath)
	online := err == nil || !remote.IsRetryable(err)
	if err != nil && online {
		d.logger.Warn("Probe rejected", "error", err)
	}

	was := d.online
	d.online = online

	switch {
	case online && !was:
		d.logger.Info("Remote storage reachable again")
		d.drain(ctx)
	case !online && was:
		d.logger.Info("Remote storage unreachable", "error", err)
	}
}

// record сохраняет время последней синхронизации, дошедшей до удаленного хранилища
func (d *Daemon) record(ctx context.Context, res *sync.Result) {
	if d.meta == nil || res == nil || res.Offline || !d.prober.Configured() {
		return
	}
	if err := d.meta.SaveLastSyncTimestamp(ctx, d.now().UnixMilli()); err != nil {
		d.logger.Warn("Failed to save last sync time", "error", err)
	}
}

func (d *Daemon) logStatus(ctx context.Context) error {
	ch, unsubscribe := d.syncer.Subscribe()
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return nil
		case st, ok := <-ch:
			if !ok {
				return nil
			}
			d.logger.Info("Sync status", "status", st)
		}
	}
}
