package sync

import (
	"context"
	"errors"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/iudanet/lightnotes/internal/client/dirty"
	"github.com/iudanet/lightnotes/internal/client/queue"
	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс синхронизации заметок с удаленным хранилищем.
// Ни один метод не прерывает работу с заметками: сбои переводят статус в offline.
type Service interface {
	// StartupSync сливает удаленный индекс с локальным и догружает недостающие тела
	StartupSync(ctx context.Context) *Result

	// FocusSync сначала отправляет локальные изменения, затем забирает удаленные
	FocusSync(ctx context.Context) *Result

	// Focus запускает FocusSync с учетом минимального интервала и паузы.
	// Возвращает nil, если запуск отклонен.
	Focus(ctx context.Context) *Result

	// FullResetSync удаляет все удаленные заметки и загружает локальную копию целиком
	FullResetSync(ctx context.Context) error

	// PushNow сохраняет отложенные правки, отправляет dirty заметки, индекс и задачи, затем разбирает очередь
	PushNow(ctx context.Context) error

	// DrainQueue воспроизводит офлайн очередь
	DrainQueue(ctx context.Context) (queue.DrainResult, error)

	// SaveNote отправляет сохраненное локально тело заметки и индекс
	SaveNote(ctx context.Context, id string)

	// NoteDeleted удаляет заметку удаленно и отправляет индекс
	NoteDeleted(ctx context.Context, id string)

	// IndexChanged отправляет локальный индекс
	IndexChanged(ctx context.Context)

	// TodosChanged отправляет локальный список задач
	TodosChanged(ctx context.Context)

	// PendingOps возвращает содержимое офлайн очереди
	PendingOps(ctx context.Context) ([]queue.Op, error)

	// Status возвращает текущий статус синхронизации
	Status() Status

	// Subscribe подписывает на изменения статуса; вторым значением возвращается отписка
	Subscribe() (<-chan Status, func())
}

// Remote операции удаленного хранилища, нужные синхронизации
type Remote interface {
	queue.Remote

	ReadIndex(ctx context.Context) (models.Index, bool, error)
	ReadTodos(ctx context.Context) ([]models.Todo, bool, error)
	ReadNote(ctx context.Context, id string, fresh bool) (*remote.ReadResult, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	Remove(ctx context.Context, p string) error
}

// Options дополнительные параметры сервиса
type Options struct {
	// Wake сигнал "повторить скоро" при постановке операции в очередь; может быть nil
	Wake func()
	// Flush сохраняет отложенные локальные правки перед push; может быть nil
	Flush func(ctx context.Context) error
	// Now источник времени; по умолчанию time.Now
	Now func() time.Time
	// FocusInterval минимальный интервал между focus синхронизациями
	FocusInterval time.Duration
	// CoolOff пауза после полной пересинхронизации и push
	CoolOff time.Duration
}

// Result итог синхронизации
type Result struct {
	Merged       int  // записей индекса добавлено из удаленного хранилища
	Pulled       int  // тел заметок обновлено из удаленного хранилища
	Backfilled   int  // недостающих тел заметок загружено
	SkippedDirty int  // заметок пропущено, так как они dirty
	Pushed       int  // заметок отправлено
	TodosUpdated bool // список задач принят из удаленного хранилища
	Offline      bool // часть операций не прошла из-за связи
}

// service handles synchronization between local store and remote object store
type service struct {
	remote  Remote
	store   storage.NoteStore
	tracker *dirty.Tracker
	queue   *queue.Queue
	status  *broadcaster
	gate    *gate
	flush   func(ctx context.Context) error
	logger  *slog.Logger

	// последние байты индекса и задач, совпадающие с удаленными
	lastIndex []byte
	lastTodos []byte
	mu        stdsync.Mutex
}

// NewService creates a new sync service
func NewService(r Remote, store storage.NoteStore, queueStore storage.KV[[]queue.Op], opts Options, logger *slog.Logger) Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.FocusInterval == 0 {
		opts.FocusInterval = DefaultFocusInterval
	}
	if opts.CoolOff == 0 {
		opts.CoolOff = DefaultCoolOff
	}

	s := &service{
		remote:  r,
		store:   store,
		tracker: dirty.New(store, logger),
		status:  newBroadcaster(),
		gate:    newGate(opts.FocusInterval, opts.CoolOff, opts.Now),
		flush:   opts.Flush,
		logger:  logger,
	}
	s.queue = queue.New(queueStore, r, logger, queue.WithWake(opts.Wake), queue.WithReplayHook(s.onReplayed))

	return s
}

func (s *service) Status() Status {
	return s.status.get()
}

func (s *service) Subscribe() (<-chan Status, func()) {
	return s.status.subscribe()
}

func (s *service) PendingOps(ctx context.Context) ([]queue.Op, error) {
	return s.queue.Pending(ctx)
}

// StartupSync выполняет начальную синхронизацию. Ошибки на каждом шаге не фатальны.
func (s *service) StartupSync(ctx context.Context) *Result {
	res := &Result{}
	if !s.remote.Configured() {
		s.status.set(StatusOffline)
		return res
	}

	s.logger.Info("Starting startup sync")
	s.status.set(StatusSyncing)

	if _, ok := s.pullIndex(ctx, res); ok {
		s.backfill(ctx, res)
		s.pullTodos(ctx, res)
	}

	s.finish(res)
	s.logger.Info("Startup sync completed",
		"merged", res.Merged,
		"backfilled", res.Backfilled,
		"todos_updated", res.TodosUpdated,
		"offline", res.Offline)
	return res
}

// Focus запускает FocusSync, если это разрешает ограничитель
func (s *service) Focus(ctx context.Context) *Result {
	if !s.gate.allow() {
		s.logger.Debug("Focus sync suppressed")
		return nil
	}
	return s.FocusSync(ctx)
}

// FocusSync сначала отправляет локальное состояние, затем забирает удаленные изменения.
// Push до pull гарантирует, что собственные несохраненные правки не будут перезаписаны.
func (s *service) FocusSync(ctx context.Context) *Result {
	res := &Result{}
	if !s.remote.Configured() {
		s.status.set(StatusOffline)
		return res
	}

	s.logger.Info("Starting focus sync")
	s.status.set(StatusSyncing)

	s.push(ctx, res, false)

	if remoteIdx, ok := s.pullIndex(ctx, res); ok {
		s.pullBodies(ctx, remoteIdx, res)
		s.backfill(ctx, res)
		s.pullTodos(ctx, res)
	}

	s.finish(res)
	s.logger.Info("Focus sync completed",
		"pushed", res.Pushed,
		"pulled", res.Pulled,
		"skipped_dirty", res.SkippedDirty,
		"merged", res.Merged,
		"offline", res.Offline)
	return res
}

// PushNow отправляет локальное состояние немедленно
func (s *service) PushNow(ctx context.Context) error {
	if !s.remote.Configured() {
		s.status.set(StatusOffline)
		return remote.ErrNotConfigured
	}

	res := &Result{}
	s.status.set(StatusSyncing)
	s.push(ctx, res, true)
	s.gate.coolDown()
	s.finish(res)

	if res.Offline {
		return errors.New("some changes are queued until the remote storage is reachable")
	}
	return nil
}

// push сохраняет отложенные правки, отправляет dirty заметки и разбирает очередь.
// full=true дополнительно отправляет индекс и задачи. Focus синхронизация индекс не отправляет:
// удаленные записи других устройств сначала должны попасть в локальный индекс через слияние.
func (s *service) push(ctx context.Context, res *Result, full bool) {
	if s.flush != nil {
		if err := s.flush(ctx); err != nil {
			s.logger.Warn("Failed to flush pending edits", "error", err)
		}
	}

	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("Failed to list local notes", "error", err)
		return
	}

	for _, e := range entries {
		isDirty, err := s.tracker.IsDirty(ctx, e.ID)
		if err != nil {
			s.logger.Warn("Failed to read dirty state", "note_id", e.ID, "error", err)
		}
		if !isDirty {
			continue
		}

		body, err := s.store.ReadBody(ctx, e.ID)
		if err != nil {
			s.logger.Warn("Failed to read dirty note", "note_id", e.ID, "error", err)
			continue
		}

		if s.pushNote(ctx, e.ID, body, res) {
			res.Pushed++
		}
	}

	if full {
		s.pushIndex(ctx, res)
		s.pushTodos(ctx, res)
	}

	drained, err := s.queue.Drain(ctx)
	if err != nil {
		s.logger.Warn("Failed to drain queue", "error", err)
	}
	if drained.Remaining > 0 {
		res.Offline = true
	}
}

// DrainQueue воспроизводит офлайн очередь и обновляет статус
func (s *service) DrainQueue(ctx context.Context) (queue.DrainResult, error) {
	if !s.remote.Configured() {
		s.status.set(StatusOffline)
		return queue.DrainResult{}, nil
	}

	drained, err := s.queue.Drain(ctx)
	switch {
	case err != nil:
		s.logger.Warn("Failed to drain queue", "error", err)
	case drained.Remaining > 0:
		s.status.set(StatusOffline)
	default:
		s.status.set(StatusSynced)
	}
	return drained, err
}

// SaveNote отправляет тело заметки. Вызывается после локальной записи.
func (s *service) SaveNote(ctx context.Context, id string) {
	body, err := s.store.ReadBody(ctx, id)
	if err != nil {
		s.logger.Warn("Failed to read saved note", "note_id", id, "error", err)
		return
	}

	if err := s.tracker.SetDirty(ctx, id, true); err != nil {
		s.logger.Warn("Failed to mark note dirty", "note_id", id, "error", err)
	}

	if !s.remote.Configured() {
		s.status.set(StatusOffline)
		return
	}

	res := &Result{}
	s.status.set(StatusSyncing)
	s.pushNote(ctx, id, body, res)
	s.pushIndex(ctx, res)
	s.finish(res)
}

// NoteDeleted удаляет тело заметки удаленно и отправляет индекс.
// Индекс берется из локального хранилища, где заметки уже нет.
func (s *service) NoteDeleted(ctx context.Context, id string) {
	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("Failed to list local notes", "error", err)
		return
	}
	idx = idx.Remove(id)

	if !s.remote.Configured() {
		// Удаление без конфигурации ждет в очереди, иначе слияние вернет заметку
		s.queue.Enqueue(ctx, queue.DeleteNote(id, &idx))
		s.status.set(StatusOffline)
		return
	}

	res := &Result{}
	s.status.set(StatusSyncing)

	if err := s.remote.DeleteNote(ctx, id); err != nil {
		s.fail(ctx, res, queue.DeleteNote(id, &idx), err)
		s.finish(res)
		return
	}

	s.logger.Info("Note deleted remotely", "note_id", id)
	s.pushIndex(ctx, res)
	s.finish(res)
}

func (s *service) IndexChanged(ctx context.Context) {
	if !s.remote.Configured() {
		return
	}
	res := &Result{}
	s.pushIndex(ctx, res)
	s.finish(res)
}

func (s *service) TodosChanged(ctx context.Context) {
	if !s.remote.Configured() {
		return
	}
	res := &Result{}
	s.pushTodos(ctx, res)
	s.finish(res)
}

// FullResetSync делает локальную копию авторитетной: удаляет все удаленные заметки,
// сбрасывает удаленный список задач и загружает все тела, индекс и задачи.
// Первая ошибка прерывает операцию.
func (s *service) FullResetSync(ctx context.Context) error {
	if !s.remote.Configured() {
		s.status.set(StatusOffline)
		return remote.ErrNotConfigured
	}

	s.logger.Info("Starting full reset sync")
	s.status.set(StatusSyncing)

	err := s.fullReset(ctx)
	s.gate.coolDown()
	if err != nil {
		s.status.set(StatusOffline)
		s.logger.Error("Full reset sync failed", "error", err)
		return err
	}

	s.status.set(StatusSynced)
	s.logger.Info("Full reset sync completed")
	return nil
}
