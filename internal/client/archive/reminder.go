package archive

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/lightnotes/internal/client/storage"
)

const (
	// ReminderInterval срок, после которого предлагается сделать резервную копию
	ReminderInterval = 7 * 24 * time.Hour
	// SnoozeInterval пауза напоминания после отказа
	SnoozeInterval = 3 * 24 * time.Hour
)

// Reminder напоминает о резервной копии, если последний экспорт старше недели
type Reminder struct {
	meta storage.MetadataStorage
	now  func() time.Time
}

// NewReminder создает напоминание; now может быть nil
func NewReminder(meta storage.MetadataStorage, now func() time.Time) *Reminder {
	if now == nil {
		now = time.Now
	}
	return &Reminder{meta: meta, now: now}
}

// Due сообщает, пора ли напомнить о резервной копии
func (r *Reminder) Due(ctx context.Context) (bool, error) {
	now := r.now().UnixMilli()

	snoozed, err := r.meta.GetReminderSnoozedUntil(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read reminder state: %w", err)
	}
	if now < snoozed {
		return false, nil
	}

	last, err := r.meta.GetLastBackupTimestamp(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read last backup time: %w", err)
	}
	return last == 0 || now-last > ReminderInterval.Milliseconds(), nil
}

// MarkBackedUp запоминает время экспорта
func (r *Reminder) MarkBackedUp(ctx context.Context) error {
	return r.meta.SaveLastBackupTimestamp(ctx, r.now().UnixMilli())
}

// Snooze откладывает напоминание
func (r *Reminder) Snooze(ctx context.Context) error {
	return r.meta.SaveReminderSnoozedUntil(ctx, r.now().Add(SnoozeInterval).UnixMilli())
}
