package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/auditx/auditx/internal/domain"
	"github.com/auditx/auditx/internal/ports"
)

// RedisResetTokenStore holds password reset tokens in Redis. Expiry is
// delegated to the key TTL, so an expired token is simply absent.
type RedisResetTokenStore struct {
	client *redis.Client
}

// NewRedisResetTokenStore creates a new Redis reset token store
func NewRedisResetTokenStore(client *redis.Client) ports.ResetTokenStore {
	return &RedisResetTokenStore{client: client}
}

func resetKey(token string) string {
	return fmt.Sprintf("reset_token:%s", token)
}

// Store saves a token with the given TTL
func (s *RedisResetTokenStore) Store(ctx context.Context, token ports.ResetToken, ttl time.Duration) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal reset token: %w", err)
	}
	if err := s.client.Set(ctx, resetKey(token.Token), data, ttl).Err(); err != nil {
		return domain.NewDependencyError("failed to store reset token", err)
	}
	return nil
}

// Find returns the token if present and unexpired
func (s *RedisResetTokenStore) Find(ctx context.Context, token string) (*ports.ResetToken, error) {
	data, err := s.client.Get(ctx, resetKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrInvalidResetToken
		}
		return nil, domain.NewDependencyError("failed to read reset token", err)
	}

	var rt ports.ResetToken
	if err := json.Unmarshal(data, &rt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reset token: %w", err)
	}
	return &rt, nil
}

// Consume invalidates a token so it cannot be reused
func (s *RedisResetTokenStore) Consume(ctx context.Context, token string) error {
	deleted, err := s.client.Del(ctx, resetKey(token)).Result()
	if err != nil {
		return domain.NewDependencyError("failed to consume reset token", err)
	}
	if deleted == 0 {
		return domain.ErrInvalidResetToken
	}
	return nil
}
