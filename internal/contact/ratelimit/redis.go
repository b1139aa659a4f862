package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "contact:rl:" // Per-client counter: contact:rl:{client_id}

// RedisLimiter keeps the per-client counters in Redis so the budget is
// shared across instances. The window is enforced with a TTL set on
// first increment, so expiry matches the in-memory fixed-window
// semantics.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	counterKey := redisKeyPrefix + key

	// INCR and EXPIRE NX in one pipeline: the expiry is only attached
	// when the counter is created, so concurrent requests cannot
	// extend the window.
	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, counterKey)
	pipe.ExpireNX(ctx, counterKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit check for %q: %w", key, err)
	}

	return incr.Val() <= int64(l.limit), nil
}
