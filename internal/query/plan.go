package query

import (
	"sort"
	"strings"
)

// Filter is one allowed predicate. Values holds the comma separated parts of
// the request value; a record matches when any value matches.
type Filter struct {
	Field  string
	Mode   MatchMode
	Values []string
}

// SortKey orders results by one field. The zero value means default order.
type SortKey struct {
	Field      string
	Descending bool
}

func (k SortKey) IsZero() bool {
	return k.Field == ""
}

type IgnoredKind string

const (
	IgnoredFilter  IgnoredKind = "filter"
	IgnoredSort    IgnoredKind = "sort"
	IgnoredField   IgnoredKind = "field"
	IgnoredInclude IgnoredKind = "include"
)

// Ignored records a requested name that the allow-list dropped.
type Ignored struct {
	Kind IgnoredKind
	Name string
}

// Plan is a Request reduced to what the allow-list permits.
type Plan struct {
	Filters  []Filter
	Sort     SortKey
	Fields   []string
	Includes []string
	Page     int
	PerPage  int
	Ignored  []Ignored
}

// HasInclude reports whether the named relation should be attached.
func (p Plan) HasInclude(name string) bool {
	return contains(p.Includes, name)
}

// NewPlan applies every allow-list step and normalises pagination.
func NewPlan(req Request, list Allowlist) Plan {
	spec := list.EntitySpec()
	page, perPage := Normalize(req.Page, req.PerPage)

	p := Plan{
		Filters:  ApplyFilters(req, spec),
		Sort:     ApplySort(req, spec),
		Fields:   ApplyProjection(req, spec),
		Includes: ApplyIncludes(req, spec),
		Page:     page,
		PerPage:  perPage,
	}

	for _, key := range sortedKeys(req.Filters) {
		if _, ok := spec.filter(key); !ok {
			p.Ignored = append(p.Ignored, Ignored{Kind: IgnoredFilter, Name: key})
		}
	}
	if req.Sort != "" && p.Sort.IsZero() {
		p.Ignored = append(p.Ignored, Ignored{Kind: IgnoredSort, Name: req.Sort})
	}
	for _, f := range req.Fields {
		if !contains(spec.Fields, f) {
			p.Ignored = append(p.Ignored, Ignored{Kind: IgnoredField, Name: f})
		}
	}
	for _, inc := range req.Include {
		if !contains(spec.Includes, inc) {
			p.Ignored = append(p.Ignored, Ignored{Kind: IgnoredInclude, Name: inc})
		}
	}

	return p
}

// ApplyFilters keeps the request filters named by the allow-list. The result
// is ordered by field so it depends only on the allowed keys.
func ApplyFilters(req Request, list Allowlist) []Filter {
	spec := list.EntitySpec()

	var filters []Filter
	for _, key := range sortedKeys(req.Filters) {
		allowed, ok := spec.filter(key)
		if !ok {
			continue
		}
		values := splitList(req.Filters[key])
		if len(values) == 0 {
			continue
		}
		filters = append(filters, Filter{Field: allowed.Field, Mode: allowed.Mode, Values: values})
	}
	return filters
}

// ApplySort returns the requested sort when it is allowed. Only the first
// comma separated key is honoured; anything else yields the zero SortKey.
func ApplySort(req Request, list Allowlist) SortKey {
	spec := list.EntitySpec()

	raw := strings.TrimSpace(req.Sort)
	if i := strings.IndexByte(raw, ','); i >= 0 {
		raw = strings.TrimSpace(raw[:i])
	}

	key := SortKey{}
	if field, ok := strings.CutPrefix(raw, "-"); ok {
		key.Descending = true
		raw = field
	}
	if raw == "" || !contains(spec.Sorts, raw) {
		return SortKey{}
	}
	key.Field = raw
	return key
}

// ApplyProjection returns the allowed subset of the requested fields in
// allow-list order, always keeping "id" when it is allowed. A nil result means
// all fields.
func ApplyProjection(req Request, list Allowlist) []string {
	spec := list.EntitySpec()

	var fields []string
	for _, f := range spec.Fields {
		if contains(req.Fields, f) {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	if contains(spec.Fields, "id") && !contains(fields, "id") {
		fields = append([]string{"id"}, fields...)
	}
	return fields
}

// ApplyIncludes returns the requested relations that the allow-list permits.
func ApplyIncludes(req Request, list Allowlist) []string {
	spec := list.EntitySpec()

	var includes []string
	for _, inc := range spec.Includes {
		if contains(req.Include, inc) {
			includes = append(includes, inc)
		}
	}
	return includes
}

// Normalize applies pagination defaults and bounds. A zero perPage means
// "not given" and takes the default; negative values clamp to 1.
func Normalize(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case perPage == 0:
		perPage = DefaultPerPage
	case perPage < 0:
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
