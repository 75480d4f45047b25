package memory

import (
	"context"
	"sync"

	"github.com/iudanet/lightnotes/internal/client/storage"
)

// Metadata хранит служебные метки в памяти
type Metadata struct {
	lastSync   int64
	lastBackup int64
	snoozed    int64
	mu         sync.Mutex
}

// Compile-time check
var _ storage.MetadataStorage = (*Metadata)(nil)

func NewMetadata() *Metadata {
	return &Metadata{}
}

func (m *Metadata) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSync = timestamp
	return nil
}

func (m *Metadata) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSync, nil
}

func (m *Metadata) SaveLastBackupTimestamp(ctx context.Context, timestamp int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastBackup = timestamp
	return nil
}

func (m *Metadata) GetLastBackupTimestamp(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastBackup, nil
}

func (m *Metadata) SaveReminderSnoozedUntil(ctx context.Context, timestamp int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snoozed = timestamp
	return nil
}

func (m *Metadata) GetReminderSnoozedUntil(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snoozed, nil
}
