package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourorg/inventory/internal/apperrors"
	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
	"github.com/yourorg/inventory/internal/repository"
	"github.com/yourorg/inventory/internal/service"
)

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

type fakeBrandService struct {
	page      *query.Page[*models.Brand]
	brands    []*models.Brand
	err       error
	lastScope query.Scope
	lastReq   query.Request
	status    *bool
	created   *models.CreateBrandRequest
	updated   *models.UpdateBrandRequest
	getParams models.GetBrandParams
	deleted   string
}

func (s *fakeBrandService) ListBrands(_ context.Context, scope query.Scope, req query.Request) (*query.Page[*models.Brand], error) {
	s.lastScope, s.lastReq = scope, req
	return s.page, s.err
}

func (s *fakeBrandService) ListAllBrands(_ context.Context, scope query.Scope) ([]*models.Brand, error) {
	s.lastScope = scope
	return s.brands, s.err
}

func (s *fakeBrandService) ListBrandsByStatus(_ context.Context, scope query.Scope, active bool) ([]*models.Brand, error) {
	s.lastScope, s.status = scope, &active
	return s.brands, s.err
}

func (s *fakeBrandService) GetBrand(_ context.Context, _ query.Scope, params models.GetBrandParams) (*models.Brand, error) {
	s.getParams = params
	if s.err != nil {
		return nil, s.err
	}
	return s.brands[0], nil
}

func (s *fakeBrandService) CreateBrand(_ context.Context, scope query.Scope, req *models.CreateBrandRequest) (*models.Brand, error) {
	s.lastScope, s.created = scope, req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Brand{ID: "brand_new", Name: req.Name, Slug: "new", IsActive: true, CreatedAt: created, UpdatedAt: created}, nil
}

func (s *fakeBrandService) UpdateBrand(_ context.Context, _ query.Scope, req *models.UpdateBrandRequest) (*models.Brand, error) {
	s.updated = req
	if s.err != nil {
		return nil, s.err
	}
	return s.brands[0], nil
}

func (s *fakeBrandService) ToggleBrandStatus(_ context.Context, _ query.Scope, brandID string) (*models.Brand, error) {
	if s.err != nil {
		return nil, s.err
	}
	b := *s.brands[0]
	b.ID = brandID
	b.IsActive = !b.IsActive
	return &b, nil
}

func (s *fakeBrandService) DeleteBrand(_ context.Context, _ query.Scope, params models.DeleteBrandParams) error {
	s.deleted = params.BrandID
	return s.err
}

type fakeCategoryService struct {
	page       *query.Page[*models.Category]
	categories []*models.Category
	err        error
	updated    *models.UpdateCategoryRequest
	created    *models.CreateCategoryRequest
}

func (s *fakeCategoryService) ListCategories(context.Context, query.Scope, query.Request) (*query.Page[*models.Category], error) {
	return s.page, s.err
}

func (s *fakeCategoryService) ListAllCategories(context.Context, query.Scope) ([]*models.Category, error) {
	return s.categories, s.err
}

func (s *fakeCategoryService) ListRootCategories(context.Context, query.Scope) ([]*models.Category, error) {
	return s.categories, s.err
}

func (s *fakeCategoryService) GetCategory(context.Context, query.Scope, models.GetCategoryParams) (*models.Category, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.categories[0], nil
}

func (s *fakeCategoryService) CreateCategory(_ context.Context, _ query.Scope, req *models.CreateCategoryRequest) (*models.Category, error) {
	s.created = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.Category{ID: "cat_new", Name: req.Name, ParentID: req.ParentID, CreatedAt: created, UpdatedAt: created}, nil
}

func (s *fakeCategoryService) UpdateCategory(_ context.Context, _ query.Scope, req *models.UpdateCategoryRequest) (*models.Category, error) {
	s.updated = req
	if s.err != nil {
		return nil, s.err
	}
	return s.categories[0], nil
}

func (s *fakeCategoryService) DeleteCategory(context.Context, query.Scope, models.DeleteCategoryParams) error {
	return s.err
}

func acmeBrand() *models.Brand {
	return &models.Brand{
		ID:          "brand_1",
		WarehouseID: ptr("wh_1"),
		Name:        "Acme",
		Slug:        "acme",
		Description: ptr("Tools"),
		IsActive:    true,
		CreatedAt:   created,
		UpdatedAt:   created,
		Warehouse:   &models.Warehouse{ID: "wh_1", Name: "Main", Code: "MAIN"},
	}
}

func serve(t *testing.T, h *Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("X-Warehouse-ID", "wh_1")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestListBrandsProjectsRecords(t *testing.T) {
	brands := &fakeBrandService{page: &query.Page[*models.Brand]{
		Data:     []*models.Brand{acmeBrand()},
		Meta:     query.NewMeta(31, 2, 15),
		Fields:   []string{"id", "name"},
		Includes: []string{"warehouse"},
	}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands?filter[name]=ac&filter[bogus]=x&sort=-name&fields=name&include=warehouse&page=2", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Equal(t, query.Scope{WarehouseID: "wh_1"}, brands.lastScope)
	assert.Equal(t, map[string]string{"name": "ac", "bogus": "x"}, brands.lastReq.Filters)
	assert.Equal(t, "-name", brands.lastReq.Sort)
	assert.Equal(t, 2, brands.lastReq.Page)

	resp := decode[struct {
		Data []map[string]any `json:"data"`
		Meta PageMeta         `json:"meta"`
	}](t, rec)

	assert.Equal(t, PageMeta{CurrentPage: 2, LastPage: 3, PerPage: 15, Total: 31, From: 16, To: 30}, resp.Meta)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, map[string]any{
		"id":        "brand_1",
		"name":      "Acme",
		"warehouse": map[string]any{"id": "wh_1", "name": "Main", "code": "MAIN"},
	}, resp.Data[0])
}

func TestListBrandsWithoutProjectionReturnsAllFields(t *testing.T) {
	brands := &fakeBrandService{page: &query.Page[*models.Brand]{
		Data: []*models.Brand{acmeBrand()},
		Meta: query.NewMeta(1, 1, 15),
	}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Data []map[string]any `json:"data"`
	}](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "acme", resp.Data[0]["slug"])
	assert.Equal(t, "2024-03-01T12:00:00Z", resp.Data[0]["created_at"])
	assert.NotContains(t, resp.Data[0], "warehouse")
}

func TestListBrandsMalformedQuery(t *testing.T) {
	h := NewHandler(&fakeBrandService{}, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands?per_page=lots", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode[ErrorResponse](t, rec)
	assert.Equal(t, "invalid_request_error", resp.Error.Type)
	assert.Equal(t, codeValidationFailed, resp.Error.Code)
	assert.Equal(t, "per_page", resp.Error.Param)
}

func TestListBrandsEmptyPage(t *testing.T) {
	brands := &fakeBrandService{page: &query.Page[*models.Brand]{Data: []*models.Brand{}, Meta: query.NewMeta(0, 1, 15)}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[],"meta":{"current_page":1,"last_page":1,"per_page":15,"total":0,"from":0,"to":0}}`, rec.Body.String())
}

func TestListBrandsByStatus(t *testing.T) {
	brands := &fakeBrandService{brands: []*models.Brand{acmeBrand()}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands/by-status?status=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, brands.status)
	assert.False(t, *brands.status)

	rec = serve(t, h, http.MethodGet, "/api/v1/brands/by-status?status=maybe", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListAllBrands(t *testing.T) {
	brands := &fakeBrandService{brands: []*models.Brand{acmeBrand()}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands/all", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Data []BrandResponse `json:"data"`
	}](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Acme", resp.Data[0].Name)
}

func TestGetBrandPassesIncludes(t *testing.T) {
	brands := &fakeBrandService{brands: []*models.Brand{acmeBrand()}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands/brand_1?include=warehouse,%20bogus", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.GetBrandParams{BrandID: "brand_1", Includes: []string{"warehouse", "bogus"}}, brands.getParams)
}

func TestCreateBrand(t *testing.T) {
	brands := &fakeBrandService{}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodPost, "/api/v1/brands", `{"name":"Acme","description":"Tools"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	assert.Equal(t, "Acme", brands.created.Name)
	assert.Equal(t, "Tools", *brands.created.Description)
	assert.Nil(t, brands.created.IsActive)
	assert.Equal(t, "wh_1", brands.lastScope.WarehouseID)

	resp := decode[BrandResponse](t, rec)
	assert.Equal(t, "brand_new", resp.ID)
}

func TestCreateBrandRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		code  int
		param string
	}{
		{"not json", `{"name":`, http.StatusBadRequest, ""},
		{"missing name", `{"description":"x"}`, http.StatusUnprocessableEntity, "name"},
		{"name too long", `{"name":"` + strings.Repeat("a", 256) + `"}`, http.StatusUnprocessableEntity, "name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brands := &fakeBrandService{}
			h := NewHandler(brands, &fakeCategoryService{}, "")

			rec := serve(t, h, http.MethodPost, "/api/v1/brands", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.param, decode[ErrorResponse](t, rec).Error.Param)
			assert.Nil(t, brands.created)
		})
	}
}

func TestUpdateBrandViaPutAndPatch(t *testing.T) {
	for _, method := range []string{http.MethodPatch, http.MethodPut} {
		brands := &fakeBrandService{brands: []*models.Brand{acmeBrand()}}
		h := NewHandler(brands, &fakeCategoryService{}, "")

		rec := serve(t, h, method, "/api/v1/brands/brand_1", `{"name":"Acme 2"}`)
		require.Equal(t, http.StatusOK, rec.Code, method)
		assert.Equal(t, "brand_1", brands.updated.ID)
		assert.Equal(t, "Acme 2", *brands.updated.Name)
		assert.Nil(t, brands.updated.Slug)
	}
}

func TestToggleBrandStatus(t *testing.T) {
	brands := &fakeBrandService{brands: []*models.Brand{acmeBrand()}}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodPatch, "/api/v1/brands/brand_1/toggle-status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[BrandResponse](t, rec).IsActive)
}

func TestDeleteBrand(t *testing.T) {
	brands := &fakeBrandService{}
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodDelete, "/api/v1/brands/brand_9", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "brand_9", brands.deleted)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", apperrors.NewNotFoundError("brand", "brand_1"), http.StatusNotFound, "brand not found: brand_1"},
		{"validation", apperrors.NewValidationError("name", "name is required"), http.StatusUnprocessableEntity, "name is required"},
		{"conflict", apperrors.NewConflictError("brand", "name has already been taken"), http.StatusConflict, "brand conflict: name has already been taken"},
		{"internal", errors.New("pq: relation brands does not exist"), http.StatusInternalServerError, "An internal error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeBrandService{err: tt.err}, &fakeCategoryService{}, "")

			rec := serve(t, h, http.MethodGet, "/api/v1/brands/brand_1", "")
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, decode[ErrorResponse](t, rec).Error.Message)
		})
	}
}

func TestCustomWarehouseHeader(t *testing.T) {
	brands := &fakeBrandService{brands: []*models.Brand{}}
	h := NewHandler(brands, &fakeCategoryService{}, "X-Tenant")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/brands/all", nil)
	req.Header.Set("X-Tenant", " wh_7 ")
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, query.Scope{WarehouseID: "wh_7"}, brands.lastScope)
}

func TestListCategoriesIncludesChildren(t *testing.T) {
	parent := &models.Category{ID: "cat_1", Name: "Electronics", CreatedAt: created, UpdatedAt: created, Children: []*models.Category{}}
	categories := &fakeCategoryService{page: &query.Page[*models.Category]{
		Data:     []*models.Category{parent},
		Meta:     query.NewMeta(1, 1, 15),
		Fields:   []string{"id", "name"},
		Includes: []string{"children", "parent"},
	}}
	h := NewHandler(&fakeBrandService{}, categories, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/categories?include=children,parent&fields=name", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Data []map[string]any `json:"data"`
	}](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, map[string]any{
		"id":       "cat_1",
		"name":     "Electronics",
		"children": []any{},
		"parent":   nil,
	}, resp.Data[0])
}

func TestListRootCategories(t *testing.T) {
	categories := &fakeCategoryService{categories: []*models.Category{{ID: "cat_1", Name: "Books"}}}
	h := NewHandler(&fakeBrandService{}, categories, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/categories/roots", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[struct {
		Data []CategoryResponse `json:"data"`
	}](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Nil(t, resp.Data[0].ParentID)
}

func TestCreateCategory(t *testing.T) {
	categories := &fakeCategoryService{}
	h := NewHandler(&fakeBrandService{}, categories, "")

	rec := serve(t, h, http.MethodPost, "/api/v1/categories", `{"name":"Phones","parent_id":"cat_1"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "cat_1", *categories.created.ParentID)
}

func TestUpdateCategoryParent(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		parentID    *string
		clearParent bool
	}{
		{"absent keeps parent", `{"name":"Phones"}`, nil, false},
		{"null moves to root", `{"parent_id":null}`, nil, true},
		{"value reparents", `{"parent_id":"cat_4"}`, ptr("cat_4"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := &fakeCategoryService{categories: []*models.Category{{ID: "cat_2", Name: "Phones"}}}
			h := NewHandler(&fakeBrandService{}, categories, "")

			rec := serve(t, h, http.MethodPatch, "/api/v1/categories/cat_2", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "cat_2", categories.updated.ID)
			assert.Equal(t, tt.parentID, categories.updated.ParentID)
			assert.Equal(t, tt.clearParent, categories.updated.ClearParent)
		})
	}
}

func TestDeleteCategoryConflict(t *testing.T) {
	categories := &fakeCategoryService{err: apperrors.NewConflictError("category", "has child categories")}
	h := NewHandler(&fakeBrandService{}, categories, "")

	rec := serve(t, h, http.MethodDelete, "/api/v1/categories/cat_1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, codeConflict, decode[ErrorResponse](t, rec).Error.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := NewHandler(&fakeBrandService{}, &fakeCategoryService{}, "")
	cfg := DefaultRouteConfig()
	cfg.Metrics = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("metrics"))
	})
	router := h.RoutesWithConfig(cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "OK", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, "metrics", rec.Body.String())
}

type scanRow struct {
	total int
	err   error
}

func (r scanRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.total
	return nil
}

// boolColumnDB answers count queries like Postgres does for a boolean
// column: any bound string that is not a boolean literal fails with 22P02.
type boolColumnDB struct {
	args []any
}

func (db *boolColumnDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected fetch")
}

func (db *boolColumnDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	db.args = args
	for _, a := range args {
		if s, ok := a.(string); ok && s != "wh_1" {
			return scanRow{err: &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type boolean"}}
		}
	}
	return scanRow{}
}

func (db *boolColumnDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec")
}

func TestListBrandsUnparseableBooleanFilter(t *testing.T) {
	db := &boolColumnDB{}
	brands := service.NewBrandService(repository.NewBrandRepository(db))
	h := NewHandler(brands, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/api/v1/brands?filter[is_active]=maybe", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"data":[],"meta":{"current_page":1,"last_page":1,"per_page":15,"total":0,"from":0,"to":0}}`, rec.Body.String())
	assert.Equal(t, []any{"wh_1"}, db.args)

	rec = serve(t, h, http.MethodGet, "/api/v1/brands?filter[is_active]=no", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []any{"wh_1", false}, db.args)
}

func TestSwaggerDocumentsPerPageBounds(t *testing.T) {
	h := NewHandler(&fakeBrandService{}, &fakeCategoryService{}, "")

	rec := serve(t, h, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	doc := decode[struct {
		Paths map[string]map[string]struct {
			Parameters []struct {
				Name    string  `json:"name"`
				Maximum float64 `json:"maximum"`
				Default float64 `json:"default"`
			} `json:"parameters"`
		} `json:"paths"`
	}](t, rec)

	for _, path := range []string{"/brands", "/categories"} {
		found := false
		for _, p := range doc.Paths[path]["get"].Parameters {
			if p.Name != "per_page" {
				continue
			}
			found = true
			assert.Equal(t, float64(query.MaxPerPage), p.Maximum, path)
			assert.Equal(t, float64(query.DefaultPerPage), p.Default, path)
		}
		assert.True(t, found, "per_page missing on %s", path)
	}
}
