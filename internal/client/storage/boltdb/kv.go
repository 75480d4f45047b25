package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/lightnotes/internal/client/storage"
)

// KV хранит одно значение типа V в JSON под ключом key в бакете bucket.
// Реализует storage.KV[V].
type KV[V any] struct {
	store  *Storage
	bucket []byte
	key    []byte
}

// Compile-time check
var _ storage.KV[map[string]string] = (*KV[map[string]string])(nil)

// NewKV создает типизированное хранилище значения поверх BoltDB
func NewKV[V any](s *Storage, bucket []byte, key string) *KV[V] {
	return &KV[V]{
		store:  s,
		bucket: bucket,
		key:    []byte(key),
	}
}

// Load returns the stored value or the zero value of V
func (kv *KV[V]) Load(ctx context.Context) (V, error) {
	var value V

	if kv.store.db == nil {
		return value, storage.ErrStorageClosed
	}

	err := kv.store.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(kv.bucket)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", kv.bucket)
		}

		data := bucket.Get(kv.key)
		if data == nil {
			// Значение еще не сохранялось
			return nil
		}

		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", kv.key, err)
		}
		return nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return value, nil
}

// Save replaces the stored value
func (kv *KV[V]) Save(ctx context.Context, value V) error {
	if kv.store.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", kv.key, err)
	}

	return kv.store.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(kv.bucket)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", kv.bucket)
		}

		if err := bucket.Put(kv.key, data); err != nil {
			return fmt.Errorf("failed to save %s: %w", kv.key, err)
		}
		return nil
	})
}
