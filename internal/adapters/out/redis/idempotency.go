package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "backoffice:idempotency:"

// Client is the subset of the redis client used by IdempotencyStore.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// IdempotencyStore reserves request keys for a fixed window.
type IdempotencyStore struct {
	client Client
	ttl    time.Duration
}

func NewIdempotencyStore(client Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Reserve claims key for the principal. It returns false when the same
// principal already used the key inside the window.
func (s *IdempotencyStore) Reserve(ctx context.Context, principal int64, key string) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.redisKey(principal, key), time.Now().UTC().Unix(), s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("idempotency reserve: %w", err)
	}
	return ok, nil
}

// Release frees a key so a failed request can be retried with it.
func (s *IdempotencyStore) Release(ctx context.Context, principal int64, key string) error {
	if err := s.client.Del(ctx, s.redisKey(principal, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) redisKey(principal int64, key string) string {
	return fmt.Sprintf("%s%d:%s", idempotencyKeyPrefix, principal, key)
}
