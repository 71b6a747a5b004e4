package ports

import "context"

// Cache is a best-effort byte cache. Implementations never surface backend
// failures: a broken cache behaves like an empty one.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
}
