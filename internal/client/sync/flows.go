package sync

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/lightnotes/internal/client/queue"
	"github.com/iudanet/lightnotes/internal/client/remote"
	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
	"github.com/iudanet/lightnotes/pkg/api"
)

// pullIndex читает удаленный индекс и сливает его с локальным, если он изменился.
// ok=false означает, что удаленное хранилище недоступно и дальнейшие шаги бессмысленны.
func (s *service) pullIndex(ctx context.Context, res *Result) (models.Index, bool) {
	remoteIdx, unchanged, err := s.remote.ReadIndex(ctx)
	switch {
	case err == nil && unchanged:
		s.logger.Debug("Remote index unchanged")
		return nil, true
	case err == nil:
		if err := s.mergeIndex(ctx, remoteIdx, res); err != nil {
			s.logger.Warn("Failed to merge remote index", "error", err)
		}
		return remoteIdx, true
	case remote.IsNotFound(err):
		s.logger.Debug("Remote index not found")
		return nil, true
	default:
		s.skip(res, "read index", err)
		return nil, !res.Offline
	}
}

// mergeIndex объединяет удаленный индекс с локальным, локальные записи в приоритете.
// Записи, удаление которых ждет в очереди, не возвращаются.
func (s *service) mergeIndex(ctx context.Context, remoteIdx models.Index, res *Result) error {
	local, err := s.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local notes: %w", err)
	}

	deleted := s.pendingDeletes(ctx)
	incoming := make(models.Index, 0, len(remoteIdx))
	for _, e := range remoteIdx {
		if deleted[e.ID] && !local.Contains(e.ID) {
			continue
		}
		incoming = append(incoming, e)
	}

	merged := models.MergeIndex(local, incoming)
	res.Merged += len(merged) - len(local)

	if err := s.store.SaveIndex(ctx, merged); err != nil {
		return fmt.Errorf("failed to save merged index: %w", err)
	}

	// Удаленный индекс известен, повторно отправлять те же байты не нужно
	if data, err := remote.EncodeIndex(remoteIdx); err == nil {
		s.mu.Lock()
		s.lastIndex = data
		s.mu.Unlock()
	}

	s.logger.Debug("Index merged", "local", len(local), "remote", len(remoteIdx), "merged", len(merged))
	return nil
}

// pullBodies обновляет тела заметок, которые есть локально и не dirty.
// Dirty проверяется дважды: до запроса и после него, перед записью.
// Тело, изменившееся за время запроса или расходящееся с базой, не перезаписывается,
// даже если отметка dirty еще не выставлена.
func (s *service) pullBodies(ctx context.Context, remoteIdx models.Index, res *Result) {
	local, err := s.store.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("Failed to list local notes", "error", err)
		return
	}

	indexUpdated := false

	for i, e := range local {
		if isDirty, err := s.tracker.IsDirty(ctx, e.ID); err != nil || isDirty {
			res.SkippedDirty++
			continue
		}

		before, err := s.store.ReadBody(ctx, e.ID)
		if err != nil {
			// Отсутствующие тела догружает backfill
			if !errors.Is(err, storage.ErrNoteNotFound) {
				s.logger.Warn("Failed to read local note", "note_id", e.ID, "error", err)
			}
			continue
		}
		if s.unrecordedEdit(ctx, e.ID, before) {
			s.logger.Info("Local body differs from base, keeping it", "note_id", e.ID)
			res.SkippedDirty++
			continue
		}

		rr, err := s.remote.ReadNote(ctx, e.ID, false)
		if err != nil {
			if !remote.IsNotFound(err) {
				s.skip(res, "read note", err)
			}
			continue
		}
		if rr.Unchanged {
			continue
		}

		// Локальное состояние могло измениться за время запроса
		if isDirty, err := s.tracker.IsDirty(ctx, e.ID); err != nil || isDirty {
			s.logger.Info("Note became dirty during pull, keeping local body", "note_id", e.ID)
			res.SkippedDirty++
			continue
		}

		body := string(rr.Data)
		current, err := s.store.ReadBody(ctx, e.ID)
		if err != nil {
			s.logger.Debug("Note gone during pull", "note_id", e.ID, "error", err)
			continue
		}
		if current != before {
			s.logger.Info("Note changed during pull, keeping local body", "note_id", e.ID)
			res.SkippedDirty++
			continue
		}
		if current == body {
			_ = s.tracker.SetBase(ctx, e.ID, rr.Tag, body)
			continue
		}

		if err := s.store.WriteBody(ctx, e.ID, body); err != nil {
			s.logger.Warn("Failed to write pulled note", "note_id", e.ID, "error", err)
			continue
		}
		if err := s.tracker.SetBase(ctx, e.ID, rr.Tag, body); err != nil {
			s.logger.Warn("Failed to update note base", "note_id", e.ID, "error", err)
		}
		res.Pulled++

		// Метаданные записи берем из удаленного индекса, позицию курсора оставляем локальной
		if pos := remoteIdx.Find(e.ID); pos >= 0 {
			updated := remoteIdx[pos]
			updated.CursorPos = e.CursorPos
			local[i] = updated
			indexUpdated = true
		}

		s.logger.Debug("Note pulled", "note_id", e.ID, "etag", rr.Tag)
	}

	if indexUpdated {
		if err := s.store.SaveIndex(ctx, local); err != nil {
			s.logger.Warn("Failed to save index", "error", err)
		}
	}
}

// unrecordedEdit сообщает, что локальное тело отличается от подтвержденной базы
func (s *service) unrecordedEdit(ctx context.Context, id, body string) bool {
	base, err := s.tracker.Base(ctx, id)
	if err != nil {
		return true
	}
	return base.BaseEtag != "" && base.BaseBody != body
}

// backfill загружает тела, которые есть в индексе, но отсутствуют локально
func (s *service) backfill(ctx context.Context, res *Result) {
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("Failed to list local notes", "error", err)
		return
	}

	for _, e := range entries {
		if _, err := s.store.ReadBody(ctx, e.ID); !errors.Is(err, storage.ErrNoteNotFound) {
			continue
		}

		rr, err := s.remote.ReadNote(ctx, e.ID, true)
		if err != nil {
			if remote.IsNotFound(err) {
				s.logger.Debug("Note body missing remotely", "note_id", e.ID)
			} else {
				s.skip(res, "backfill note", err)
			}
			continue
		}

		body := string(rr.Data)
		if err := s.store.WriteBody(ctx, e.ID, body); err != nil {
			s.logger.Warn("Failed to write backfilled note", "note_id", e.ID, "error", err)
			continue
		}
		if err := s.tracker.SetBase(ctx, e.ID, rr.Tag, body); err != nil {
			s.logger.Warn("Failed to update note base", "note_id", e.ID, "error", err)
		}
		res.Backfilled++
	}
}

// pullTodos принимает удаленный список задач целиком, если он изменился
func (s *service) pullTodos(ctx context.Context, res *Result) {
	todos, unchanged, err := s.remote.ReadTodos(ctx)
	if err != nil {
		if !remote.IsNotFound(err) {
			s.skip(res, "read todos", err)
		}
		return
	}
	if unchanged {
		return
	}

	if err := s.store.SaveTodos(ctx, todos); err != nil {
		s.logger.Warn("Failed to save remote todos", "error", err)
		return
	}

	if data, err := remote.EncodeTodos(todos); err == nil {
		s.mu.Lock()
		s.lastTodos = data
		s.mu.Unlock()
	}
	res.TodosUpdated = true
}

// pushNote отправляет тело заметки; true если запись подтверждена
func (s *service) pushNote(ctx context.Context, id, body string, res *Result) bool {
	tag, err := s.remote.PutNote(ctx, id, body)
	if err != nil {
		if remote.IsConflict(err) {
			// Заметку создали параллельно; остается dirty до следующего сохранения
			s.logger.Warn("Note was created concurrently, keeping it dirty", "note_id", id)
			return false
		}
		s.fail(ctx, res, queue.PutNote(id, body), err)
		return false
	}

	s.confirm(ctx, id, tag, body)
	return true
}

// confirm фиксирует базу, если локальное тело не изменилось за время записи
func (s *service) confirm(ctx context.Context, id, tag, body string) {
	current, err := s.store.ReadBody(ctx, id)
	if err != nil {
		s.logger.Debug("Note gone after write", "note_id", id, "error", err)
		return
	}
	if current != body {
		s.logger.Debug("Note changed during write, staying dirty", "note_id", id)
		return
	}
	if err := s.tracker.SetBase(ctx, id, tag, body); err != nil {
		s.logger.Warn("Failed to update note base", "note_id", id, "error", err)
	}
}

func (s *service) pushIndex(ctx context.Context, res *Result) {
	idx, err := s.store.ListEntries(ctx)
	if err != nil {
		s.logger.Warn("Failed to list local notes", "error", err)
		return
	}
	data, err := remote.EncodeIndex(idx)
	if err != nil {
		s.logger.Warn("Failed to encode index", "error", err)
		return
	}

	s.mu.Lock()
	same := bytes.Equal(data, s.lastIndex)
	s.mu.Unlock()
	if same {
		return
	}

	if _, err := s.remote.PutIndex(ctx, idx); err != nil {
		s.fail(ctx, res, queue.PutIndex(idx), err)
		return
	}

	s.mu.Lock()
	s.lastIndex = data
	s.mu.Unlock()
}

func (s *service) pushTodos(ctx context.Context, res *Result) {
	todos, err := s.store.ReadTodos(ctx)
	if err != nil {
		s.logger.Warn("Failed to read local todos", "error", err)
		return
	}
	data, err := remote.EncodeTodos(todos)
	if err != nil {
		s.logger.Warn("Failed to encode todos", "error", err)
		return
	}

	s.mu.Lock()
	same := bytes.Equal(data, s.lastTodos)
	s.mu.Unlock()
	if same {
		return
	}

	if _, err := s.remote.PutTodos(ctx, todos); err != nil {
		s.fail(ctx, res, queue.PutTodos(todos), err)
		return
	}

	s.mu.Lock()
	s.lastTodos = data
	s.mu.Unlock()
}

// fullReset выполняет шаги полной пересинхронизации
func (s *service) fullReset(ctx context.Context) error {
	keys, err := s.remote.ListKeys(ctx, api.NotesPrefix)
	if err != nil {
		return fmt.Errorf("failed to list remote notes: %w", err)
	}
	for _, key := range keys {
		if err := s.remote.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	s.logger.Info("Remote notes deleted", "count", len(keys))

	if _, err := s.remote.PutTodos(ctx, []models.Todo{}); err != nil {
		return fmt.Errorf("failed to reset remote todos: %w", err)
	}

	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list local notes: %w", err)
	}

	for _, e := range entries {
		body, err := s.store.ReadBody(ctx, e.ID)
		if errors.Is(err, storage.ErrNoteNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read note %s: %w", e.ID, err)
		}

		tag, err := s.remote.PutNote(ctx, e.ID, body)
		if err != nil {
			return fmt.Errorf("failed to upload note %s: %w", e.ID, err)
		}
		if err := s.tracker.SetBase(ctx, e.ID, tag, body); err != nil {
			return fmt.Errorf("failed to update note base %s: %w", e.ID, err)
		}
	}

	if _, err := s.remote.PutIndex(ctx, entries); err != nil {
		return fmt.Errorf("failed to upload index: %w", err)
	}

	todos, err := s.store.ReadTodos(ctx)
	if err != nil {
		return fmt.Errorf("failed to read local todos: %w", err)
	}
	if _, err := s.remote.PutTodos(ctx, todos); err != nil {
		return fmt.Errorf("failed to upload todos: %w", err)
	}

	indexData, _ := remote.EncodeIndex(entries)
	todosData, _ := remote.EncodeTodos(todos)
	s.mu.Lock()
	s.lastIndex = indexData
	s.lastTodos = todosData
	s.mu.Unlock()

	// Отложенные операции относятся к состоянию до сброса
	if err := s.queue.Clear(ctx); err != nil {
		return err
	}

	s.logger.Info("Local copy uploaded", "notes", len(entries), "todos", len(todos))
	return nil
}

// onReplayed обрабатывает успешно воспроизведенную операцию очереди
func (s *service) onReplayed(ctx context.Context, op queue.Op, tag string) {
	switch op.Kind {
	case queue.KindPutNote:
		s.confirm(ctx, op.NoteID, tag, op.Body)
	case queue.KindPutIndex, queue.KindDeleteNote:
		if op.Index == nil {
			return
		}
		if data, err := remote.EncodeIndex(*op.Index); err == nil {
			s.mu.Lock()
			s.lastIndex = data
			s.mu.Unlock()
		}
	case queue.KindPutTodos:
		if data, err := remote.EncodeTodos(op.Todos); err == nil {
			s.mu.Lock()
			s.lastTodos = data
			s.mu.Unlock()
		}
	}
}

// fail ставит операцию в очередь, если ее имеет смысл повторить
func (s *service) fail(ctx context.Context, res *Result, op queue.Op, err error) {
	switch {
	case remote.IsClientError(err), remote.IsConflict(err):
		s.logger.Warn("Remote rejected operation", "kind", op.Kind, "target", op.Target(), "error", err)
		return
	case remote.IsNotConfigured(err):
		res.Offline = true
		return
	}

	res.Offline = true
	s.logger.Info("Remote unavailable, queueing operation", "kind", op.Kind, "target", op.Target(), "error", err)

	if s.alreadyQueued(ctx, op) {
		return
	}
	s.queue.Enqueue(ctx, op)
}

// alreadyQueued сообщает, совпадает ли последняя операция той же цели с op.
// Удаление заметки, записанное позже, прерывает поиск: иначе повтор записи
// после удаления потерялся бы.
func (s *service) alreadyQueued(ctx context.Context, op queue.Op) bool {
	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return false
	}

	for i := len(pending) - 1; i >= 0; i-- {
		p := pending[i]
		if overrides(p, op) {
			return false
		}
		if p.Kind != op.Kind || p.NoteID != op.NoteID {
			continue
		}
		switch op.Kind {
		case queue.KindPutNote:
			return p.Body == op.Body
		case queue.KindPutIndex:
			a, _ := remote.EncodeIndex(derefIndex(p.Index))
			b, _ := remote.EncodeIndex(derefIndex(op.Index))
			return bytes.Equal(a, b)
		case queue.KindPutTodos:
			a, _ := remote.EncodeTodos(p.Todos)
			b, _ := remote.EncodeTodos(op.Todos)
			return bytes.Equal(a, b)
		default:
			return false
		}
	}
	return false
}

// overrides сообщает, затрагивает ли удаление p ту же цель, что и op
func overrides(p, op queue.Op) bool {
	if p.Kind != queue.KindDeleteNote {
		return false
	}
	switch op.Kind {
	case queue.KindPutNote:
		return p.NoteID == op.NoteID
	case queue.KindPutIndex:
		return p.Index != nil
	default:
		return false
	}
}

// pendingDeletes возвращает идентификаторы заметок с ожидающим удалением
func (s *service) pendingDeletes(ctx context.Context) map[string]bool {
	out := make(map[string]bool)
	pending, err := s.queue.Pending(ctx)
	if err != nil {
		return out
	}
	for _, op := range pending {
		if op.Kind == queue.KindDeleteNote {
			out[op.NoteID] = true
		}
	}
	return out
}

// skip логирует пропущенный шаг синхронизации
func (s *service) skip(res *Result, step string, err error) {
	switch {
	case remote.IsCorrupt(err):
		s.logger.Warn("Corrupt remote payload, keeping local state", "step", step, "error", err)
	case remote.IsRetryable(err), remote.IsNotConfigured(err):
		res.Offline = true
		s.logger.Info("Remote unavailable", "step", step, "error", err)
	default:
		s.logger.Warn("Sync step skipped", "step", step, "error", err)
	}
}

// finish выставляет итоговый статус
func (s *service) finish(res *Result) {
	if res.Offline || !s.remote.Configured() {
		s.status.set(StatusOffline)
		return
	}
	s.status.set(StatusSynced)
}

func derefIndex(idx *models.Index) models.Index {
	if idx == nil {
		return nil
	}
	return *idx
}
