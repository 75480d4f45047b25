package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lightnotes/internal/client/storage"
)

const (
	keyLastSyncTimestamp   = "last_sync_timestamp"
	keyLastBackupTimestamp = "last_backup_timestamp"
	keyReminderSnoozed     = "backup_reminder_snoozed_until"
)

// Compile-time check
var _ storage.MetadataStorage = (*Storage)(nil)

// SaveLastSyncTimestamp saves the timestamp of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	return s.putTimestamp(keyLastSyncTimestamp, timestamp)
}

// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	return s.getTimestamp(keyLastSyncTimestamp)
}

// SaveLastBackupTimestamp saves the timestamp of the last export
func (s *Storage) SaveLastBackupTimestamp(ctx context.Context, timestamp int64) error {
	return s.putTimestamp(keyLastBackupTimestamp, timestamp)
}

// GetLastBackupTimestamp retrieves the timestamp of the last export
func (s *Storage) GetLastBackupTimestamp(ctx context.Context) (int64, error) {
	return s.getTimestamp(keyLastBackupTimestamp)
}

func (s *Storage) SaveReminderSnoozedUntil(ctx context.Context, timestamp int64) error {
	return s.putTimestamp(keyReminderSnoozed, timestamp)
}

func (s *Storage) GetReminderSnoozedUntil(ctx context.Context) (int64, error) {
	return s.getTimestamp(keyReminderSnoozed)
}

func (s *Storage) putTimestamp(key string, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(BucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		if err := bucket.Put([]byte(key), timestampBytes); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}

		return nil
	})
}

func (s *Storage) getTimestamp(key string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(BucketSettings)
		if bucket == nil {
			return fmt.Errorf("settings bucket not found")
		}

		timestampBytes := bucket.Get([]byte(key))
		if len(timestampBytes) != 8 {
			// Метка еще не сохранялась
			return nil
		}

		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return timestamp, nil
}
