package storage

import (
	"context"
	"fmt"

	"github.com/educlima/vasco-app/internal/config"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "vasco:slot:"

// Open returns the slot store selected by cfg.SessionBackend and a func that
// releases it.
func Open(ctx context.Context, cfg *config.Config) (SlotStore, func() error, error) {
	switch cfg.SessionBackend {
	case config.BackendSQLite:
		db, err := New(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		return NewSQLiteSlots(db), db.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return NewRedisSlots(client, redisKeyPrefix), client.Close, nil

	case config.BackendMemory:
		return NewMemorySlots(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
