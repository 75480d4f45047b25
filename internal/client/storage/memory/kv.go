package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/iudanet/lightnotes/internal/client/storage"
)

// KV хранит значение в памяти в сериализованном виде,
// поэтому Load всегда возвращает независимую копию.
type KV[V any] struct {
	data []byte
	mu   sync.Mutex
}

// Compile-time check
var _ storage.KV[[]string] = (*KV[[]string])(nil)

// NewKV создает пустое хранилище значения
func NewKV[V any]() *KV[V] {
	return &KV[V]{}
}

func (kv *KV[V]) Load(ctx context.Context) (V, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	var value V
	if kv.data == nil {
		return value, nil
	}
	if err := json.Unmarshal(kv.data, &value); err != nil {
		var zero V
		return zero, fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return value, nil
}

func (kv *KV[V]) Save(ctx context.Context, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data = data
	return nil
}
