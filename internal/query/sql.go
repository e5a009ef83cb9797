package query

import (
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"
)

// Table renders plans as PostgreSQL statements for a single table.
type Table struct {
	Name             string
	PrimaryKey       string
	ScopeColumn      string
	SoftDeleteColumn string
	// Columns maps field names to column expressions where they differ.
	Columns map[string]string
	// Booleans lists the fields stored as boolean columns. Exact values for
	// them are coerced with ParseBool; values that do not parse match nothing.
	Booleans []string
}

func (t Table) column(field string) string {
	if c, ok := t.Columns[field]; ok {
		return c
	}
	return field
}

func (t Table) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Conditions returns the scope, soft-delete and filter predicates in order.
func (t Table) Conditions(scope Scope, filters []Filter) []squirrel.Sqlizer {
	var conds []squirrel.Sqlizer
	if t.SoftDeleteColumn != "" {
		conds = append(conds, squirrel.Eq{t.SoftDeleteColumn: nil})
	}
	if t.ScopeColumn != "" && !scope.IsZero() {
		conds = append(conds, squirrel.Eq{t.ScopeColumn: scope.WarehouseID})
	}
	for _, f := range filters {
		if c := t.predicate(f); c != nil {
			conds = append(conds, c)
		}
	}
	return conds
}

func (t Table) predicate(f Filter) squirrel.Sqlizer {
	col := t.column(f.Field)

	var parts squirrel.Or
	switch f.Mode {
	case Exact:
		var values []any
		for _, v := range f.Values {
			if strings.EqualFold(v, "null") {
				parts = append(parts, squirrel.Eq{col: nil})
				continue
			}
			if slices.Contains(t.Booleans, f.Field) {
				b, err := ParseBool(v)
				if err != nil {
					continue
				}
				values = append(values, b)
				continue
			}
			values = append(values, v)
		}
		switch len(values) {
		case 0:
		case 1:
			parts = append(parts, squirrel.Eq{col: values[0]})
		default:
			parts = append(parts, squirrel.Eq{col: values})
		}
	case Partial:
		for _, v := range f.Values {
			parts = append(parts, squirrel.ILike{col: "%" + escapeLike(v) + "%"})
		}
	}

	switch {
	case len(parts) == 0 && len(f.Values) > 0:
		return squirrel.Expr("FALSE")
	case len(parts) == 0:
		return nil
	case len(parts) == 1:
		return parts[0]
	default:
		return parts
	}
}

// SelectQuery selects columns for the plan's filters and sort, bounded by w.
func (t Table) SelectQuery(columns []string, scope Scope, plan Plan, w Window) squirrel.SelectBuilder {
	sb := t.builder().Select(columns...).From(t.Name)
	for _, c := range t.Conditions(scope, plan.Filters) {
		sb = sb.Where(c)
	}
	sb = sb.OrderBy(t.OrderBy(plan.Sort)...)
	if w.Limit > 0 {
		sb = sb.Limit(uint64(w.Limit))
	}
	if w.Offset > 0 {
		sb = sb.Offset(uint64(w.Offset))
	}
	return sb
}

// CountQuery counts the rows matching scope and filters.
func (t Table) CountQuery(scope Scope, filters []Filter) squirrel.SelectBuilder {
	sb := t.builder().Select("COUNT(*)").From(t.Name)
	for _, c := range t.Conditions(scope, filters) {
		sb = sb.Where(c)
	}
	return sb
}

// OrderBy returns the ORDER BY terms for key, with the primary key as the
// final tiebreaker.
func (t Table) OrderBy(key SortKey) []string {
	pk := t.PrimaryKey
	if pk == "" {
		pk = "id"
	}
	if key.IsZero() {
		return []string{pk + " ASC"}
	}

	dir := " ASC"
	if key.Descending {
		dir = " DESC"
	}
	col := t.column(key.Field)
	if col == pk {
		return []string{pk + dir}
	}
	return []string{col + dir, pk + " ASC"}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
