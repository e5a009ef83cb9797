package query

import (
	"context"
	"time"
)

// Scope restricts every query to one tenant. An empty WarehouseID is
// unscoped.
type Scope struct {
	WarehouseID string
}

func (s Scope) IsZero() bool {
	return s.WarehouseID == ""
}

// Window bounds a fetch. A zero Limit means no bound.
type Window struct {
	Offset int
	Limit  int
}

// Source is the minimal capability a data store needs to serve lists: count
// the matching set and fetch an ordered window of it with relations attached.
type Source[T any] interface {
	Count(ctx context.Context, scope Scope, filters []Filter) (int, error)
	Fetch(ctx context.Context, scope Scope, plan Plan, window Window) ([]T, error)
}

// Observer receives list timings and dropped parameters.
type Observer interface {
	ObserveList(entity, op string, elapsed time.Duration, results int)
	ObserveIgnored(entity string, ignored []Ignored)
}

type Option func(*options)

type options struct {
	observer Observer
}

func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// Accessor lists one entity type from a Source under an allow-list.
type Accessor[T any] struct {
	entity string
	spec   EntitySpec
	source Source[T]
	opts   options
}

func NewAccessor[T any](entity string, list Allowlist, source Source[T], opts ...Option) *Accessor[T] {
	a := &Accessor[T]{
		entity: entity,
		spec:   list.EntitySpec(),
		source: source,
	}
	for _, opt := range opts {
		opt(&a.opts)
	}
	return a
}

// Plan reduces req to what this accessor's allow-list permits.
func (a *Accessor[T]) Plan(req Request) Plan {
	return NewPlan(req, a.spec)
}

// List returns one page of the filtered, sorted set.
func (a *Accessor[T]) List(ctx context.Context, scope Scope, req Request) (*Page[T], error) {
	start := time.Now()
	plan := a.prepare(req)

	total, err := a.source.Count(ctx, scope, plan.Filters)
	if err != nil {
		return nil, err
	}

	meta := NewMeta(total, plan.Page, plan.PerPage)
	page := &Page[T]{Data: []T{}, Meta: meta, Fields: plan.Fields, Includes: plan.Includes}
	if meta.InRange() {
		items, err := a.source.Fetch(ctx, scope, plan, Window{Offset: meta.Offset(), Limit: meta.PerPage})
		if err != nil {
			return nil, err
		}
		if items != nil {
			page.Data = items
		}
	}

	a.observe("list", start, len(page.Data))
	return page, nil
}

// ListAll returns the whole filtered, sorted set without pagination.
func (a *Accessor[T]) ListAll(ctx context.Context, scope Scope, req Request) ([]T, error) {
	start := time.Now()
	plan := a.prepare(req)

	items, err := a.source.Fetch(ctx, scope, plan, Window{})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	a.observe("list_all", start, len(items))
	return items, nil
}

func (a *Accessor[T]) prepare(req Request) Plan {
	plan := NewPlan(req, a.spec)
	if a.opts.observer != nil && len(plan.Ignored) > 0 {
		a.opts.observer.ObserveIgnored(a.entity, plan.Ignored)
	}
	return plan
}

func (a *Accessor[T]) observe(op string, start time.Time, results int) {
	if a.opts.observer != nil {
		a.opts.observer.ObserveList(a.entity, op, time.Since(start), results)
	}
}
