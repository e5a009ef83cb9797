package query

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/inventory/internal/apperrors"
)

func TestParseRequest(t *testing.T) {
	values, err := url.ParseQuery("filter[name]=ana&filter[is_active]=true&sort=-name&fields=id,name&include=warehouse&page=2&per_page=30&unrelated=1")
	require.NoError(t, err)

	req, err := ParseRequest(values)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"name": "ana", "is_active": "true"}, req.Filters)
	assert.Equal(t, "-name", req.Sort)
	assert.Equal(t, []string{"id", "name"}, req.Fields)
	assert.Equal(t, []string{"warehouse"}, req.Include)
	assert.Equal(t, 2, req.Page)
	assert.Equal(t, 30, req.PerPage)
}

func TestParseRequestMergesRepeatedFilters(t *testing.T) {
	values, err := url.ParseQuery("filter[slug]=a&filter[slug]=b")
	require.NoError(t, err)

	req, err := ParseRequest(values)
	require.NoError(t, err)
	assert.Equal(t, "a,b", req.Filters["slug"])
}

func TestParseRequestEmptyIsDefaults(t *testing.T) {
	req, err := ParseRequest(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, req.Filters)
	assert.Zero(t, req.Page)
	assert.Zero(t, req.PerPage)
	assert.Nil(t, req.Fields)
}

func TestParseRequestMalformed(t *testing.T) {
	tests := []struct {
		name  string
		query string
		param string
	}{
		{"bare filter", "filter=x", "filter"},
		{"empty key", "filter[]=x", "filter[]"},
		{"nested key", "filter[a][b]=x", "filter[a][b]"},
		{"unterminated", "filter[a=x", "filter[a"},
		{"page not a number", "page=two", "page"},
		{"per_page not a number", "per_page=1.5", "per_page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			_, err = ParseRequest(values)
			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
			assert.Equal(t, tt.param, verr.Field)
		})
	}
}
