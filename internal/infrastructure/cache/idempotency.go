package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "payments:inflight:"

// IdempotencyGuard holds a short-lived Redis lock per key so that one milestone
// is never charged by two concurrent requests.
type IdempotencyGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewIdempotencyGuard(client *redis.Client, ttl time.Duration) *IdempotencyGuard {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &IdempotencyGuard{client: client, ttl: ttl}
}

// Acquire returns false when the key is already held. A guard without a client
// always grants the lock.
func (g *IdempotencyGuard) Acquire(ctx context.Context, key string) (bool, error) {
	if g == nil || g.client == nil {
		return true, nil
	}
	return g.client.SetNX(ctx, idempotencyPrefix+key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
}

func (g *IdempotencyGuard) Release(ctx context.Context, key string) error {
	if g == nil || g.client == nil {
		return nil
	}
	err := g.client.Del(ctx, idempotencyPrefix+key).Err()
	if err == redis.Nil {
		return nil
	}
	return err
}
