package storage

import "context"

// KV is a typed single-value store with explicit load/save.
// Used for process-wide sync state (ETag cache, offline queue, remote config)
// so the core does not depend on a specific storage medium.
type KV[V any] interface {
	// Load returns the stored value or the zero value of V if nothing was saved yet
	Load(ctx context.Context) (V, error)

	// Save replaces the stored value
	Save(ctx context.Context, value V) error
}
