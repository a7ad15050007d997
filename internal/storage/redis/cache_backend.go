package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/vladislavdragonenkov/storefront/internal/storage/cache"
)

// CacheBackend хранит выборки заказов в Redis. Поколение — отдельный счётчик INCR,
// ключи старых поколений не удаляются и истекают по TTL.
type CacheBackend struct {
	client *goredis.Client
	prefix string
}

// NewCacheBackend создаёт backend кэша с префиксом ключей.
func NewCacheBackend(client *goredis.Client, prefix string) *CacheBackend {
	return &CacheBackend{client: client, prefix: prefix}
}

func (b *CacheBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.client.Get(ctx, b.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return data, true, nil
}

func (b *CacheBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (b *CacheBackend) Generation(ctx context.Context) (int64, error) {
	gen, err := b.client.Get(ctx, b.generationKey()).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redis get generation: %w", err)
	}
	return gen, nil
}

func (b *CacheBackend) Invalidate(ctx context.Context) (int64, error) {
	gen, err := b.client.Incr(ctx, b.generationKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr generation: %w", err)
	}
	return gen, nil
}

func (b *CacheBackend) generationKey() string {
	return b.prefix + "generation"
}

var _ cache.Backend = (*CacheBackend)(nil)
