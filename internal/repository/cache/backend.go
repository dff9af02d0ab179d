package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Backend stores serialized notes by key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type LocalBackend struct {
	cache *gocache.Cache
}

// NewLocalBackend creates an in-process cache which purges expired
// entries every cleanupInterval.
func NewLocalBackend(defaultTTL, cleanupInterval time.Duration) *LocalBackend {
	return &LocalBackend{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (b *LocalBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	if x, found := b.cache.Get(key); found {
		return x.([]byte), true, nil
	}
	return nil, false, nil
}

func (b *LocalBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	b.cache.Set(key, value, ttl)
	return nil
}

func (b *LocalBackend) Delete(_ context.Context, key string) error {
	b.cache.Delete(key)
	return nil
}

type RedisBackend struct {
	rdb *redis.Client
}

func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (b *RedisBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return b.rdb.Set(ctx, key, value, ttl).Err()
}

func (b *RedisBackend) Delete(ctx context.Context, key string) error {
	return b.rdb.Del(ctx, key).Err()
}
