package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client service marks
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the time of the last sync that reached the remote store (unix ms)
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// SaveLastBackupTimestamp saves the time of the last archive export (unix ms)
	SaveLastBackupTimestamp(ctx context.Context, timestamp int64) error

	// GetLastBackupTimestamp returns 0 if no backup was made yet
	GetLastBackupTimestamp(ctx context.Context) (int64, error)

	// SaveReminderSnoozedUntil postpones the backup reminder (unix ms)
	SaveReminderSnoozedUntil(ctx context.Context, timestamp int64) error

	// GetReminderSnoozedUntil returns 0 if the reminder was never snoozed
	GetReminderSnoozedUntil(ctx context.Context) (int64, error)
}
