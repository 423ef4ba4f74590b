package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/auditx/auditx/internal/ports"
)

// RedisLoginLimiter throttles login attempts per key using a counter
// with a sliding expiry window.
type RedisLoginLimiter struct {
	client   *redis.Client
	attempts int
	window   time.Duration
}

// NewRedisLoginLimiter creates a limiter allowing attempts per window.
func NewRedisLoginLimiter(client *redis.Client, attempts int, window time.Duration) ports.LoginLimiter {
	if attempts <= 0 {
		attempts = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RedisLoginLimiter{client: client, attempts: attempts, window: window}
}

func limiterKey(key string) string {
	return fmt.Sprintf("login_attempts:%s", key)
}

// Allow reports whether another attempt is permitted and records it
func (l *RedisLoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	pipeline := l.client.Pipeline()
	incrCmd := pipeline.Incr(ctx, limiterKey(key))
	pipeline.Expire(ctx, limiterKey(key), l.window)

	if _, err := pipeline.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record login attempt: %w", err)
	}
	return incrCmd.Val() <= int64(l.attempts), nil
}

// Reset clears the counter after a successful login
func (l *RedisLoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, limiterKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}
