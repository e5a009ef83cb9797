package query

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Resolver loads a named relation for one record.
type Resolver func(ctx context.Context, r Record) (any, error)

// MemorySource serves records held in memory. Insertion order is the default
// order.
type MemorySource struct {
	records    []Record
	scopeField string
	relations  map[string]Resolver
}

func NewMemorySource(records []Record) *MemorySource {
	return &MemorySource{
		records:   records,
		relations: map[string]Resolver{},
	}
}

// WithScopeField names the field compared against Scope.WarehouseID.
func (s *MemorySource) WithScopeField(field string) *MemorySource {
	s.scopeField = field
	return s
}

// WithRelation registers the resolver used when name is included.
func (s *MemorySource) WithRelation(name string, resolve Resolver) *MemorySource {
	s.relations[name] = resolve
	return s
}

func (s *MemorySource) Count(_ context.Context, scope Scope, filters []Filter) (int, error) {
	return len(s.match(scope, filters)), nil
}

func (s *MemorySource) Fetch(ctx context.Context, scope Scope, plan Plan, window Window) ([]Record, error) {
	rows := s.match(scope, plan.Filters)

	if !plan.Sort.IsZero() {
		field, desc := plan.Sort.Field, plan.Sort.Descending
		slices.SortStableFunc(rows, func(a, b Record) int {
			c := compareValues(a[field], b[field])
			if desc {
				return -c
			}
			return c
		})
	}

	if window.Offset > 0 {
		if window.Offset >= len(rows) {
			return []Record{}, nil
		}
		rows = rows[window.Offset:]
	}
	if window.Limit > 0 && window.Limit < len(rows) {
		rows = rows[:window.Limit]
	}

	out := make([]Record, len(rows))
	for i, r := range rows {
		rec := maps.Clone(r)
		for _, name := range plan.Includes {
			resolve, ok := s.relations[name]
			if !ok {
				continue
			}
			v, err := resolve(ctx, r)
			if err != nil {
				return nil, fmt.Errorf("resolve %s: %w", name, err)
			}
			rec[name] = v
		}
		out[i] = rec
	}
	return out, nil
}

func (s *MemorySource) match(scope Scope, filters []Filter) []Record {
	var rows []Record
	for _, r := range s.records {
		if !scope.IsZero() && s.scopeField != "" && stringify(r[s.scopeField]) != scope.WarehouseID {
			continue
		}
		if matchesAll(r, filters) {
			rows = append(rows, r)
		}
	}
	return rows
}

func matchesAll(r Record, filters []Filter) bool {
	for _, f := range filters {
		if !f.Matches(r[f.Field]) {
			return false
		}
	}
	return true
}

// Matches reports whether v satisfies any of the filter values.
func (f Filter) Matches(v any) bool {
	for _, want := range f.Values {
		switch f.Mode {
		case Exact:
			if exactMatch(v, want) {
				return true
			}
		case Partial:
			if v != nil && strings.Contains(strings.ToLower(stringify(v)), strings.ToLower(want)) {
				return true
			}
		}
	}
	return false
}

func exactMatch(v any, want string) bool {
	v = deref(v)
	if v == nil {
		return strings.EqualFold(want, "null")
	}
	if b, ok := v.(bool); ok {
		parsed, err := ParseBool(want)
		return err == nil && parsed == b
	}
	return stringify(v) == want
}

// ParseBool accepts the boolean spellings query strings carry.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}

func deref(v any) any {
	switch t := v.(type) {
	case *string:
		if t == nil {
			return nil
		}
		return *t
	case *time.Time:
		if t == nil {
			return nil
		}
		return *t
	}
	return v
}

func stringify(v any) string {
	switch t := deref(v).(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(t)
	}
}

// compareValues orders nil first, numbers numerically, times chronologically
// and strings case-insensitively.
func compareValues(a, b any) int {
	a, b = deref(a), deref(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch x := a.(type) {
	case bool:
		if y, ok := b.(bool); ok {
			return cmp.Compare(boolRank(x), boolRank(y))
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case string:
		if y, ok := b.(string); ok {
			if c := strings.Compare(strings.ToLower(x), strings.ToLower(y)); c != 0 {
				return c
			}
			return strings.Compare(x, y)
		}
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			return cmp.Compare(x, y)
		}
	}
	return strings.Compare(stringify(a), stringify(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}
