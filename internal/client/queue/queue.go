package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
)

// ErrUnknownKind операция неизвестного типа; такие операции отбрасываются
var ErrUnknownKind = errors.New("unknown operation kind")

//go:generate moq -out remote_mock_test.go . Remote

// Remote операции удаленного хранилища, через которые воспроизводится очередь
type Remote interface {
	Configured() bool
	PutNote(ctx context.Context, id, body string) (string, error)
	PutIndex(ctx context.Context, idx models.Index) (string, error)
	PutTodos(ctx context.Context, todos []models.Todo) (string, error)
	DeleteNote(ctx context.Context, id string) error
}

// ReplayHook вызывается после успешного воспроизведения операции с тегом записи
type ReplayHook func(ctx context.Context, op Op, tag string)

// DrainResult итог одного прохода очереди
type DrainResult struct {
	Replayed  int // успешно воспроизведено и удалено
	Dropped   int // отброшено (конфликт или ошибка клиента)
	Remaining int // осталось в очереди
}

// Queue постоянная упорядоченная очередь операций, ожидающих связи
type Queue struct {
	store      storage.KV[[]Op]
	remote     Remote
	logger     *slog.Logger
	wake       func()
	onReplayed ReplayHook
	now        func() time.Time
	group      singleflight.Group
	mu         sync.Mutex
}

// Option настройка очереди
type Option func(*Queue)

// WithWake задает сигнал "повторить скоро", вызываемый при постановке в очередь
func WithWake(wake func()) Option {
	return func(q *Queue) {
		q.wake = wake
	}
}

// WithReplayHook задает обработчик успешного воспроизведения
func WithReplayHook(hook ReplayHook) Option {
	return func(q *Queue) {
		q.onReplayed = hook
	}
}

// New создает очередь
func New(store storage.KV[[]Op], r Remote, logger *slog.Logger, opts ...Option) *Queue {
	q := &Queue{
		store:  store,
		remote: r,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue добавляет операцию в конец очереди. Не блокирует и не возвращает ошибок:
// сбой сохранения только логируется.
func (q *Queue) Enqueue(ctx context.Context, op Op) {
	if op.EnqueuedAt.IsZero() {
		op.EnqueuedAt = q.now().UTC()
	}

	q.mu.Lock()
	err := q.append(ctx, op)
	q.mu.Unlock()

	if err != nil {
		q.logger.Error("Failed to enqueue operation", "kind", op.Kind, "target", op.Target(), "error", err)
		return
	}

	q.logger.Debug("Operation queued", "kind", op.Kind, "target", op.Target())

	if q.wake != nil {
		q.wake()
	}
}

func (q *Queue) append(ctx context.Context, op Op) error {
	ops, err := q.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}
	ops = append(ops, op)
	if err := q.store.Save(ctx, ops); err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}
	return nil
}

// Pending возвращает копию содержимого очереди
func (q *Queue) Pending(ctx context.Context) ([]Op, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}
	if ops == nil {
		ops = []Op{}
	}
	return ops, nil
}

// Clear очищает очередь
func (q *Queue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.store.Save(ctx, []Op{}); err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	return nil
}

// Drain воспроизводит очередь по порядку. Без конфигурации удаленного хранилища ничего не делает.
// Успех удаляет операцию; конфликт и ошибка клиента отбрасывают ее;
// любая другая ошибка останавливает проход, сохраняя эту операцию и все последующие.
// Параллельные вызовы объединяются в один проход.
func (q *Queue) Drain(ctx context.Context) (DrainResult, error) {
	if !q.remote.Configured() {
		return DrainResult{}, nil
	}

	v, err, _ := q.group.Do("drain", func() (any, error) {
		return q.drain(ctx)
	})
	if err != nil {
		return DrainResult{}, err
	}
	return v.(DrainResult), nil
}

func (q *Queue) drain(ctx context.Context) (DrainResult, error) {
	var res DrainResult

	ops, err := q.Pending(ctx)
	if err != nil {
		return res, err
	}
	if len(ops) == 0 {
		return res, nil
	}

	q.logger.Info("Draining offline queue", "pending", len(ops))

	for i, op := range ops {
		tag, err := q.replay(ctx, op)
		switch {
		case err == nil:
			res.Replayed++
			if q.onReplayed != nil {
				q.onReplayed(ctx, op, tag)
			}
		case remote.IsConflict(err):
			// Локальное состояние уже разошлось; согласование идет через следующее сохранение
			res.Dropped++
			q.logger.Warn("Dropping conflicting queued operation", "kind", op.Kind, "target", op.Target())
		case remote.IsClientError(err), errors.Is(err, ErrUnknownKind):
			res.Dropped++
			q.logger.Warn("Dropping rejected queued operation", "kind", op.Kind, "target", op.Target(), "error", err)
		default:
			res.Remaining = len(ops) - i
			q.logger.Info("Queue drain stopped", "kind", op.Kind, "target", op.Target(), "remaining", res.Remaining, "error", err)
			return res, nil
		}

		if err := q.removeHead(ctx); err != nil {
			res.Remaining = len(ops) - i - 1
			return res, err
		}
	}

	q.logger.Info("Offline queue drained", "replayed", res.Replayed, "dropped", res.Dropped)
	return res, nil
}

// removeHead удаляет первую операцию. Во время прохода операции только дописываются в конец,
// поэтому голова очереди совпадает с обработанной операцией.
func (q *Queue) removeHead(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	ops, err := q.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load queue: %w", err)
	}
	if len(ops) == 0 {
		return nil
	}
	if err := q.store.Save(ctx, ops[1:]); err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}
	return nil
}

func (q *Queue) replay(ctx context.Context, op Op) (string, error) {
	switch op.Kind {
	case KindPutNote:
		return q.remote.PutNote(ctx, op.NoteID, op.Body)
	case KindPutIndex:
		var idx models.Index
		if op.Index != nil {
			idx = *op.Index
		}
		return q.remote.PutIndex(ctx, idx)
	case KindPutTodos:
		return q.remote.PutTodos(ctx, op.Todos)
	case KindDeleteNote:
		// Удаление уже удаленного объекта не ошибка
		if err := q.remote.DeleteNote(ctx, op.NoteID); err != nil {
			return "", err
		}
		if op.Index != nil {
			return q.remote.PutIndex(ctx, *op.Index)
		}
		return "", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, op.Kind)
	}
}
