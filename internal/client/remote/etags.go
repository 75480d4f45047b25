package remote

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/lightnotes/internal/client/storage"
	"github.com/iudanet/lightnotes/pkg/api"
)

// ETagCache хранит последний увиденный тег каждого пути.
// Тег считается только "последним наблюдавшимся" и никогда не заменяет HEAD перед записью.
type ETagCache struct {
	store storage.KV[map[string]string]
	tags  map[string]string
	mu    sync.Mutex
}

// NewETagCache создает кеш поверх постоянного хранилища
func NewETagCache(store storage.KV[map[string]string]) *ETagCache {
	return &ETagCache{store: store}
}

func (c *ETagCache) load(ctx context.Context) error {
	if c.tags != nil {
		return nil
	}
	tags, err := c.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load etag cache: %w", err)
	}
	if tags == nil {
		tags = make(map[string]string)
	}
	c.tags = tags
	return nil
}

// Get возвращает закешированный тег или пустую строку
func (c *ETagCache) Get(ctx context.Context, p string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return "", err
	}
	return c.tags[p], nil
}

// Set запоминает тег пути
func (c *ETagCache) Set(ctx context.Context, p, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return err
	}
	tag = api.NormalizeETag(tag)
	if c.tags[p] == tag {
		return nil
	}
	c.tags[p] = tag
	return c.store.Save(ctx, c.tags)
}

// Evict удаляет тег пути
func (c *ETagCache) Evict(ctx context.Context, p string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(ctx); err != nil {
		return err
	}
	if _, ok := c.tags[p]; !ok {
		return nil
	}
	delete(c.tags, p)
	return c.store.Save(ctx, c.tags)
}
