package query

// Meta describes where a page sits in the full result set. From and To are
// 1-based positions of the first and last item on the page, 0 when empty.
type Meta struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
	From        int
	To          int
}

// Offset is the number of items before the current page.
func (m Meta) Offset() int {
	return (m.CurrentPage - 1) * m.PerPage
}

// InRange reports whether the current page can contain any item.
func (m Meta) InRange() bool {
	return m.Offset() < m.Total
}

// NewMeta computes pagination metadata for total items. page and perPage are
// normalised first, so callers may pass raw values.
func NewMeta(total, page, perPage int) Meta {
	page, perPage = Normalize(page, perPage)
	if total < 0 {
		total = 0
	}

	lastPage := (total + perPage - 1) / perPage
	if lastPage < 1 {
		lastPage = 1
	}

	m := Meta{
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
	}
	if m.InRange() {
		m.From = m.Offset() + 1
		m.To = min(m.Offset()+perPage, total)
	}
	return m
}

// Page is one slice of a filtered, sorted result set. Fields is the
// projection to apply when rendering (nil means all fields) and Includes the
// relations attached to each item.
type Page[T any] struct {
	Data     []T
	Meta     Meta
	Fields   []string
	Includes []string
}

// Paginate slices an already filtered and sorted set. Out of range pages
// return empty data with accurate metadata.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	meta := NewMeta(len(items), page, perPage)
	if !meta.InRange() {
		return Page[T]{Data: []T{}, Meta: meta}
	}
	return Page[T]{Data: items[meta.From-1 : meta.To], Meta: meta}
}

// Record is a loosely typed row keyed by field name.
type Record map[string]any

// Project returns a copy of r reduced to fields. Nil fields returns r as is.
func Project(r Record, fields []string) Record {
	if fields == nil {
		return r
	}
	out := make(Record, len(fields))
	for _, f := range fields {
		if v, ok := r[f]; ok {
			out[f] = v
		}
	}
	return out
}

// Shape projects r to fields while keeping any included relations.
func Shape(r Record, fields, includes []string) Record {
	if fields == nil {
		return r
	}
	out := Project(r, fields)
	for _, inc := range includes {
		if v, ok := r[inc]; ok {
			out[inc] = v
		}
	}
	return out
}
