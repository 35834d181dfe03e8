package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type redisBackend struct {
	client *redis.Client
	prefix string
}

// NewRedisBackend stores values under prefix+key without a server-side TTL;
// expiry is decided by the secure store on read.
func NewRedisBackend(client *redis.Client, prefix string) Backend {
	return &redisBackend{client: client, prefix: prefix}
}

func (b *redisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := b.client.Get(ctx, b.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (b *redisBackend) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrKeyEmpty
	}
	return b.client.Set(ctx, b.prefix+key, value, 0).Err()
}

func (b *redisBackend) Remove(ctx context.Context, key string) error {
	return b.client.Del(ctx, b.prefix+key).Err()
}
