package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis keeps the slot as a plain string key on a redis server.
type Redis struct {
	client *redis.Client
	key    string
}

// NewRedis connects lazily to the server described by cfg.
func NewRedis(cfg RedisConfig, key string) *Redis {
	return NewRedisClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), key)
}

// NewRedisClient wraps an existing client.
func NewRedisClient(client *redis.Client, key string) *Redis {
	if key == "" {
		key = DefaultKey
	}
	return &Redis{client: client, key: key}
}

func (r *Redis) Read(ctx context.Context) (string, bool, error) {
	text, err := r.client.Get(ctx, r.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: read %s: %w", r.key, err)
	}
	return text, true, nil
}

func (r *Redis) Write(ctx context.Context, text string) error {
	if err := r.client.Set(ctx, r.key, text, 0).Err(); err != nil {
		return fmt.Errorf("store: write %s: %w", r.key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) Describe() string {
	return fmt.Sprintf("redis %s/%d", r.client.Options().Addr, r.client.Options().DB)
}
