package redis

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestCache_FailsSafeWhenUnreachable(t *testing.T) {
	client := NewClient(Config{Addr: "127.0.0.1:1", Timeout: 100 * time.Millisecond})
	defer client.Close()

	c := NewCache(client, time.Minute, zerolog.Nop())
	ctx := context.Background()

	c.Set(ctx, "room:1", []byte("x"))
	if _, ok := c.Get(ctx, "room:1"); ok {
		t.Fatal("unreachable redis must behave as a miss")
	}
	c.Delete(ctx, "room:1")
}

func TestCache_NilClient(t *testing.T) {
	c := NewCache(nil, time.Minute, zerolog.Nop())
	ctx := context.Background()

	c.Set(ctx, "k", []byte("v"))
	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("nil client must never hit")
	}
	c.Delete(ctx, "k")

	var nilCache *Cache
	if _, ok := nilCache.Get(ctx, "k"); ok {
		t.Fatal("nil cache must never hit")
	}
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 100 * time.Millisecond})
	if err == nil {
		t.Fatal("expected ping error")
	}
}
