package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
)

// DefaultWarehouseHeader carries the tenant scope when none is configured.
const DefaultWarehouseHeader = "X-Warehouse-ID"

// BrandService defines only the methods the API layer needs from the brand service.
type BrandService interface {
	ListBrands(ctx context.Context, scope query.Scope, req query.Request) (*query.Page[*models.Brand], error)
	ListAllBrands(ctx context.Context, scope query.Scope) ([]*models.Brand, error)
	ListBrandsByStatus(ctx context.Context, scope query.Scope, active bool) ([]*models.Brand, error)
	GetBrand(ctx context.Context, scope query.Scope, params models.GetBrandParams) (*models.Brand, error)
	CreateBrand(ctx context.Context, scope query.Scope, req *models.CreateBrandRequest) (*models.Brand, error)
	UpdateBrand(ctx context.Context, scope query.Scope, req *models.UpdateBrandRequest) (*models.Brand, error)
	ToggleBrandStatus(ctx context.Context, scope query.Scope, brandID string) (*models.Brand, error)
	DeleteBrand(ctx context.Context, scope query.Scope, params models.DeleteBrandParams) error
}

// CategoryService defines only the methods the API layer needs from the category service.
type CategoryService interface {
	ListCategories(ctx context.Context, scope query.Scope, req query.Request) (*query.Page[*models.Category], error)
	ListAllCategories(ctx context.Context, scope query.Scope) ([]*models.Category, error)
	ListRootCategories(ctx context.Context, scope query.Scope) ([]*models.Category, error)
	GetCategory(ctx context.Context, scope query.Scope, params models.GetCategoryParams) (*models.Category, error)
	CreateCategory(ctx context.Context, scope query.Scope, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, scope query.Scope, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, scope query.Scope, params models.DeleteCategoryParams) error
}

type Handler struct {
	brandSvc        BrandService
	categorySvc     CategoryService
	warehouseHeader string
}

func NewHandler(brandSvc BrandService, categorySvc CategoryService, warehouseHeader string) *Handler {
	if warehouseHeader == "" {
		warehouseHeader = DefaultWarehouseHeader
	}
	return &Handler{
		brandSvc:        brandSvc,
		categorySvc:     categorySvc,
		warehouseHeader: warehouseHeader,
	}
}

// scope reads the tenant from the warehouse header and tags the request log
// with it.
func (h *Handler) scope(r *http.Request) query.Scope {
	scope := query.Scope{WarehouseID: strings.TrimSpace(r.Header.Get(h.warehouseHeader))}
	if !scope.IsZero() {
		canonlog.AddRequestFields(r.Context(), map[string]any{
			"warehouse_id": scope.WarehouseID,
		})
	}
	return scope
}

// listRequest parses the declarative query parameters. It renders the error
// and returns false when they are malformed.
func listRequest(w http.ResponseWriter, r *http.Request) (query.Request, bool) {
	req, err := query.ParseRequest(r.URL.Query())
	if err != nil {
		handleServiceError(w, r, err)
		return query.Request{}, false
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"filters":  len(req.Filters),
		"sort":     req.Sort,
		"page":     req.Page,
		"per_page": req.PerPage,
	})
	return req, true
}

// decodeBody decodes and validates a JSON request body into dst. It renders
// the error and returns false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		BadRequest(w, r, err, "invalid request body")
		return false
	}

	if err := ValidateStruct(dst); err != nil {
		handleServiceError(w, r, err)
		return false
	}
	return true
}

// includeParam reads the include list for single-record endpoints. Unknown
// relation names are ignored by the repositories.
func includeParam(r *http.Request) []string {
	var out []string
	for _, name := range strings.Split(r.URL.Query().Get("include"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func shapeAll[T any](items []T, toRecord func(T) query.Record, fields, includes []string) []query.Record {
	out := make([]query.Record, len(items))
	for i, item := range items {
		out[i] = query.Shape(toRecord(item), fields, includes)
	}
	return out
}
