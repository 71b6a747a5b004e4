// Package cache provides the in-process cache backend.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache with a fixed TTL.
type Memory struct {
	store *gocache.Cache
}

// NewMemory returns a cache whose entries expire after ttl. Expired entries
// are purged every cleanup interval.
func NewMemory(ttl, cleanup time.Duration) *Memory {
	return &Memory{store: gocache.New(ttl, cleanup)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.store.SetDefault(key, value)
}

func (m *Memory) Delete(_ context.Context, key string) {
	m.store.Delete(key)
}
