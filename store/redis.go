package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/orchead/constants"
)

// Redis keeps counters as plain integer keys
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis wraps client; prefix namespaces every key
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) Get(ctx context.Context, key string) (int64, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

func (r *Redis) Set(ctx context.Context, key string, v int64) error {
	return r.client.Set(ctx, r.prefix+key, v, 0).Err()
}

func (r *Redis) Close() error { return r.client.Close() }

// RedisFlags sets session flags with SETNX so concurrent tabs of one session count once
type RedisFlags struct {
	client    *redis.Client
	prefix    string
	sessionID string
}

func NewRedisFlags(client *redis.Client, prefix, sessionID string) *RedisFlags {
	return &RedisFlags{client: client, prefix: prefix, sessionID: sessionID}
}

func (f *RedisFlags) key(k string) string {
	return f.prefix + k + ":" + f.sessionID
}

func (f *RedisFlags) SetOnce(ctx context.Context, key string) (bool, error) {
	ok, err := f.client.SetNX(ctx, f.key(key), "true", constants.SessionFlagTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

func (f *RedisFlags) Clear(ctx context.Context, key string) error {
	return f.client.Del(ctx, f.key(key)).Err()
}
