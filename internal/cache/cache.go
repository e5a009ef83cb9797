// Package cache keeps JSON encoded list results in Redis, keyed by entity
// and warehouse scope.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yourorg/inventory/internal/query"
)

const DefaultTTL = 5 * time.Minute

// ListCache stores whole list results. A ListCache with a nil client is
// disabled: loads always miss and writes do nothing.
type ListCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

func New(rdb *redis.Client, prefix string, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ListCache{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Connect parses a redis:// URL and pings the server. An empty URL returns a
// disabled cache.
func Connect(ctx context.Context, url, prefix string, ttl time.Duration) (*ListCache, error) {
	if url == "" {
		return New(nil, prefix, ttl), nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(rdb, prefix, ttl), nil
}

func (c *ListCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Key builds the cache key for one list of an entity within scope.
func (c *ListCache) Key(entity, list string, scope query.Scope) string {
	s := scope.WarehouseID
	if s == "" {
		s = "_"
	}
	return fmt.Sprintf("%s:%s:%s:%s", c.prefix, entity, s, list)
}

// Load decodes the cached value into dst and reports whether it was present.
func (c *ListCache) Load(ctx context.Context, key string, dst any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *ListCache) Store(ctx context.Context, key string, v any) error {
	if !c.Enabled() {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}

func (c *ListCache) Invalidate(ctx context.Context, keys ...string) error {
	if !c.Enabled() || len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

func (c *ListCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}
