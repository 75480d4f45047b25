package boltdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lightnotes/internal/client/storage"
)

var (
	// BoltDB bucket names
	BucketSync     = []byte("sync")     // ETag cache и очередь офлайн операций
	BucketSettings = []byte("settings") // настройки удаленного хранилища, служебные метки
)

// Ключи значений в buckets
const (
	KeyETags  = "etags"  // BucketSync: кэш ETag по пути ресурса
	KeyQueue  = "queue"  // BucketSync: офлайн очередь
	KeyRemote = "remote" // BucketSettings: адрес и токен удаленного хранилища
)

// openTimeout время ожидания файловой блокировки BoltDB.
// Пока запущен демон, база занята и одноразовые команды получают ErrStorageLocked.
const openTimeout = time.Second

// Storage represents BoltDB storage for client sync state
type Storage struct {
	db *bbolt.DB
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, fmt.Errorf("failed to open boltdb %s: %w", dbPath, storage.ErrStorageLocked)
		}
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{BucketSync, BucketSettings} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
