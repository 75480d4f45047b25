// Package dirty отслеживает заметки с локальными изменениями, не подтвержденными удаленно.
package dirty

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/internal/models"
)

// Tracker хранит флаг dirty и базовую версию заметки в метаданных локального хранилища.
// Пока заметка dirty, синхронизация не перезаписывает ее тело.
type Tracker struct {
	meta   storage.MetaStore
	logger *slog.Logger
}

// New создает трекер поверх хранилища метаданных
func New(meta storage.MetaStore, logger *slog.Logger) *Tracker {
	return &Tracker{
		meta:   meta,
		logger: logger,
	}
}

// SetDirty устанавливает флаг заметки. Синхронизация снимает флаг только через SetBase.
func (t *Tracker) SetDirty(ctx context.Context, id string, dirty bool) error {
	meta, err := t.meta.GetMeta(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get meta: %w", err)
	}
	if meta.Dirty == dirty {
		return nil
	}

	meta.Dirty = dirty
	if err := t.meta.SetMeta(ctx, id, meta); err != nil {
		return fmt.Errorf("failed to set meta: %w", err)
	}

	t.logger.Debug("Note dirty state changed", "note_id", id, "dirty", dirty)
	return nil
}

// IsDirty сообщает, есть ли у заметки неподтвержденные изменения.
// При ошибке чтения вызывающий должен считать заметку dirty.
func (t *Tracker) IsDirty(ctx context.Context, id string) (bool, error) {
	meta, err := t.meta.GetMeta(ctx, id)
	if err != nil {
		return true, fmt.Errorf("failed to get meta: %w", err)
	}
	return meta.Dirty, nil
}

// SetBase фиксирует тег и тело, принятые удаленным хранилищем, и снимает dirty.
// Вызывается только после подтвержденной записи именно этого содержимого.
func (t *Tracker) SetBase(ctx context.Context, id, tag, body string) error {
	meta := models.NoteMeta{
		BaseEtag: tag,
		BaseBody: body,
		Dirty:    false,
	}
	if err := t.meta.SetMeta(ctx, id, meta); err != nil {
		return fmt.Errorf("failed to set base: %w", err)
	}

	t.logger.Debug("Note base updated", "note_id", id, "etag", tag)
	return nil
}

// Base возвращает метаданные синхронизации заметки
func (t *Tracker) Base(ctx context.Context, id string) (models.NoteMeta, error) {
	meta, err := t.meta.GetMeta(ctx, id)
	if err != nil {
		return models.NoteMeta{}, fmt.Errorf("failed to get meta: %w", err)
	}
	return meta, nil
}
