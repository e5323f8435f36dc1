package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisSlots stores slots as plain redis strings without expiry
type RedisSlots struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSlots creates a slot store on client. Keys are namespaced with prefix.
func NewRedisSlots(client redis.UniversalClient, prefix string) *RedisSlots {
	return &RedisSlots{client: client, prefix: prefix}
}

func (r *RedisSlots) key(k string) string {
	return r.prefix + k
}

// Get retrieves the value stored under key
func (r *RedisSlots) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot %s: %w", key, err)
	}
	return value, nil
}

// Set replaces the value stored under key
func (r *RedisSlots) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set slot %s: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *RedisSlots) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", key, err)
	}
	return nil
}
