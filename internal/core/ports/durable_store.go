package ports

import "context"

// DurableStore is the process-external key-value store every state cell is
// written through to. Values are opaque serialized bytes.
type DurableStore interface {
	// Get returns domain.ErrKeyNotFound when key has never been written or
	// was deleted.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Pinger is implemented by stores that can report backend reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
