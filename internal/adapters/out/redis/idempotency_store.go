// Package redis implements the idempotency store on Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tracking/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

var _ ports.IdempotencyStore = &IdempotencyStore{}

// IdempotencyStore keeps a claim key while a request runs and a response key after it
// completed. Both expire on their own.
type IdempotencyStore struct {
	client *redis.Client
}

// NewIdempotencyStore connects to redisURL, e.g. redis://[:password@]host[:port][/database].
func NewIdempotencyStore(redisURL string) (*IdempotencyStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &IdempotencyStore{client: redis.NewClient(opts)}, nil
}

func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (ports.StoredResponse, bool, error) {
	raw, err := s.client.Get(ctx, responseKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.StoredResponse{}, false, nil
	}
	if err != nil {
		return ports.StoredResponse{}, false, fmt.Errorf("failed to get key %s: %w", key, err)
	}

	var resp ports.StoredResponse
	if err = json.Unmarshal(raw, &resp); err != nil {
		return ports.StoredResponse{}, false, fmt.Errorf("failed to decode stored response %s: %w", key, err)
	}
	return resp, true, nil
}

func (s *IdempotencyStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, claimKey(key), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve key %s: %w", key, err)
	}
	return ok, nil
}

func (s *IdempotencyStore) Save(ctx context.Context, key string, resp ports.StoredResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, responseKey(key), raw, ttl)
		pipe.Del(ctx, claimKey(key))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save key %s: %w", key, err)
	}
	return nil
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, claimKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to release key %s: %w", key, err)
	}
	return nil
}

// Ping checks if Redis is reachable.
func (s *IdempotencyStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *IdempotencyStore) Close() error {
	return s.client.Close()
}

func claimKey(key string) string {
	return keyPrefix + key + ":claim"
}

func responseKey(key string) string {
	return keyPrefix + key + ":response"
}
