package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/CareLinkServices/care-scheduler/internal/config"
)

// Cache is a thin JSON layer over redis. A nil *Cache is valid and acts
// as a cache that never hits, so redis stays optional in development.
type Cache struct {
	rdb *redis.Client
}

func New(cfg *config.Config) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil
	}

	return &Cache{rdb: rdb}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, key, raw, ttl)
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, keys...)
}
