// Package query turns loosely typed list parameters into a validated plan
// (filters, sort, projection, includes, pagination) against a per-entity
// allow-list, and runs that plan against a Source.
package query

// MatchMode selects how a filter value is compared with a field.
type MatchMode int

const (
	// Exact compares for equality.
	Exact MatchMode = iota
	// Partial matches a case-insensitive substring.
	Partial
)

func (m MatchMode) String() string {
	switch m {
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	default:
		return "unknown"
	}
}

// AllowedFilter names a filterable field and its match mode.
type AllowedFilter struct {
	Field string
	Mode  MatchMode
}

func ExactFilter(field string) AllowedFilter {
	return AllowedFilter{Field: field, Mode: Exact}
}

func PartialFilter(field string) AllowedFilter {
	return AllowedFilter{Field: field, Mode: Partial}
}

// Allowlist is implemented by anything that declares which filters, sorts,
// includes and fields a caller may ask for.
type Allowlist interface {
	EntitySpec() EntitySpec
}

// EntitySpec is the declarative allow-list for one entity type.
type EntitySpec struct {
	Filters  []AllowedFilter
	Sorts    []string
	Includes []string
	Fields   []string
}

func (s EntitySpec) EntitySpec() EntitySpec {
	return s
}

func (s EntitySpec) filter(field string) (AllowedFilter, bool) {
	for _, f := range s.Filters {
		if f.Field == field {
			return f, true
		}
	}
	return AllowedFilter{}, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
