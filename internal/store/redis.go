package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	summaryKey = "analytics:summary"
	summaryTTL = 30 * time.Second
)

// RedisStore caches the rendered analytics summary. It is optional:
// without Redis every analytics call recomputes from a full scan,
// which stays the correctness baseline either way.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis store.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client}, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// GetCachedSummary returns the cached summary JSON, or false on a miss.
func (s *RedisStore) GetCachedSummary(ctx context.Context) ([]byte, bool) {
	// Misses and cache trouble look the same to the caller: recompute.
	payload, err := s.client.Get(ctx, summaryKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// CacheSummary stores the rendered summary with a short TTL.
func (s *RedisStore) CacheSummary(ctx context.Context, payload []byte) {
	s.client.Set(ctx, summaryKey, payload, summaryTTL)
}

// InvalidateSummary drops the cached summary. Called on every write
// so managers never read a summary older than the last send.
func (s *RedisStore) InvalidateSummary(ctx context.Context) {
	s.client.Del(ctx, summaryKey)
}
