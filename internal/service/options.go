package service

import (
	"context"

	"github.com/nhalm/canonlog"
	"github.com/yourorg/inventory/internal/query"
)

// ListCache stores whole list results per scope. *cache.ListCache satisfies
// it.
type ListCache interface {
	Key(entity, list string, scope query.Scope) string
	Load(ctx context.Context, key string, dst any) (bool, error)
	Store(ctx context.Context, key string, v any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type Option func(*config)

type config struct {
	cache    ListCache
	observer query.Observer
}

func WithCache(c ListCache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

func WithObserver(o query.Observer) Option {
	return func(cfg *config) {
		cfg.observer = o
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) accessorOptions() []query.Option {
	if c.observer == nil {
		return nil
	}
	return []query.Option{query.WithObserver(c.observer)}
}

// cachedList serves key from the cache when possible, otherwise loads and
// stores it. Cache failures fall through to load.
func cachedList[T any](ctx context.Context, c ListCache, key string, load func() ([]T, error)) ([]T, error) {
	if c == nil {
		return load()
	}

	var items []T
	hit, err := c.Load(ctx, key, &items)
	if err != nil {
		canonlog.AddRequestFields(ctx, map[string]any{"cache_error": err.Error()})
	}
	if hit {
		canonlog.AddRequestFields(ctx, map[string]any{"cache": "hit"})
		return items, nil
	}

	items, err = load()
	if err != nil {
		return nil, err
	}
	if err := c.Store(ctx, key, items); err != nil {
		canonlog.AddRequestFields(ctx, map[string]any{"cache_error": err.Error()})
	}
	return items, nil
}

func invalidate(ctx context.Context, c ListCache, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx, keys...); err != nil {
		canonlog.AddRequestFields(ctx, map[string]any{"cache_error": err.Error()})
	}
}
