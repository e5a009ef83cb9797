package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/yourorg/inventory/internal/apperrors"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// Request carries raw list parameters before they are checked against an
// allow-list.
type Request struct {
	Filters map[string]string
	Sort    string
	Fields  []string
	Include []string
	Page    int
	PerPage int
}

// ParseRequest reads filter[field]=value, sort, fields, include, page and
// per_page. Unknown top-level parameters are ignored. Only structurally
// malformed input is an error.
func ParseRequest(values url.Values) (Request, error) {
	req := Request{Filters: map[string]string{}}

	for key, vals := range values {
		switch {
		case key == "filter":
			return Request{}, apperrors.NewValidationError("filter", "filter must be keyed, e.g. filter[name]=value")
		case strings.HasPrefix(key, "filter["):
			field, err := filterKey(key)
			if err != nil {
				return Request{}, err
			}
			if v := joinValues(vals); v != "" {
				req.Filters[field] = v
			}
		}
	}

	if v := values.Get("sort"); v != "" {
		req.Sort = strings.TrimSpace(v)
	}
	req.Fields = splitList(values.Get("fields"))
	req.Include = splitList(values.Get("include"))

	var err error
	if req.Page, err = intParam(values, "page"); err != nil {
		return Request{}, err
	}
	if req.PerPage, err = intParam(values, "per_page"); err != nil {
		return Request{}, err
	}

	return req, nil
}

func filterKey(key string) (string, error) {
	inner, ok := strings.CutPrefix(key, "filter[")
	if !ok || !strings.HasSuffix(inner, "]") {
		return "", apperrors.NewValidationError(key, "malformed filter parameter "+key)
	}
	inner = strings.TrimSuffix(inner, "]")
	if inner == "" || strings.ContainsAny(inner, "[]") {
		return "", apperrors.NewValidationError(key, "malformed filter parameter "+key)
	}
	return inner, nil
}

func joinValues(vals []string) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ",")
}

func intParam(values url.Values, name string) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError(name, name+" must be an integer")
	}
	return n, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
