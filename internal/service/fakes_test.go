package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
	"github.com/yourorg/inventory/internal/repository"
)

func ptr[T any](v T) *T {
	return &v
}

// listByRecords runs the query through a MemorySource over the records and
// maps the result back to the typed items by id.
func listByRecords[T any](ctx context.Context, items map[string]T, records []query.Record, scope query.Scope, plan query.Plan, w query.Window) ([]T, error) {
	rows, err := query.NewMemorySource(records).WithScopeField("warehouse_id").Fetch(ctx, scope, plan, w)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, items[r["id"].(string)])
	}
	return out, nil
}

type fakeBrandRepo struct {
	brands  []*models.Brand
	nextID  int
	created []*models.CreateBrandRequest
	updated []*models.UpdateBrandRequest
	taken   map[string]bool
}

func (r *fakeBrandRepo) EntitySpec() query.EntitySpec {
	return repository.BrandSpec
}

func (r *fakeBrandRepo) records() ([]query.Record, map[string]*models.Brand) {
	var records []query.Record
	byID := map[string]*models.Brand{}
	for _, b := range r.brands {
		if b.DeletedAt != nil {
			continue
		}
		byID[b.ID] = b
		records = append(records, query.Record{
			"id":           b.ID,
			"name":         b.Name,
			"slug":         b.Slug,
			"is_active":    b.IsActive,
			"warehouse_id": b.WarehouseID,
		})
	}
	return records, byID
}

func (r *fakeBrandRepo) Count(ctx context.Context, scope query.Scope, filters []query.Filter) (int, error) {
	records, _ := r.records()
	return query.NewMemorySource(records).WithScopeField("warehouse_id").Count(ctx, scope, filters)
}

func (r *fakeBrandRepo) Fetch(ctx context.Context, scope query.Scope, plan query.Plan, w query.Window) ([]*models.Brand, error) {
	records, byID := r.records()
	return listByRecords(ctx, byID, records, scope, plan, w)
}

func (r *fakeBrandRepo) find(scope query.Scope, id string) *models.Brand {
	for _, b := range r.brands {
		if b.ID != id || b.DeletedAt != nil {
			continue
		}
		if !scope.IsZero() && (b.WarehouseID == nil || *b.WarehouseID != scope.WarehouseID) {
			continue
		}
		return b
	}
	return nil
}

func (r *fakeBrandRepo) Create(_ context.Context, scope query.Scope, req *models.CreateBrandRequest) (*models.Brand, error) {
	if r.taken[strings.ToLower(req.Name)] {
		return nil, fmt.Errorf("insert brand: %w", repository.ErrConflict)
	}
	r.created = append(r.created, req)
	r.nextID++
	b := &models.Brand{
		ID:        fmt.Sprintf("brand_%d", r.nextID),
		Name:      req.Name,
		Slug:      req.Slug,
		IsActive:  req.IsActive == nil || *req.IsActive,
		CreatedAt: time.Now(),
	}
	if !scope.IsZero() {
		b.WarehouseID = ptr(scope.WarehouseID)
	}
	r.brands = append(r.brands, b)
	return b, nil
}

func (r *fakeBrandRepo) GetByID(_ context.Context, scope query.Scope, params models.GetBrandParams) (*models.Brand, error) {
	if b := r.find(scope, params.BrandID); b != nil {
		return b, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeBrandRepo) Update(_ context.Context, scope query.Scope, req *models.UpdateBrandRequest) (*models.Brand, error) {
	b := r.find(scope, req.ID)
	if b == nil {
		return nil, repository.ErrNotFound
	}
	r.updated = append(r.updated, req)
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Slug != nil {
		b.Slug = *req.Slug
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	return b, nil
}

func (r *fakeBrandRepo) ToggleActive(_ context.Context, scope query.Scope, brandID string) (*models.Brand, error) {
	b := r.find(scope, brandID)
	if b == nil {
		return nil, repository.ErrNotFound
	}
	b.IsActive = !b.IsActive
	return b, nil
}

func (r *fakeBrandRepo) Delete(_ context.Context, scope query.Scope, params models.DeleteBrandParams) error {
	b := r.find(scope, params.BrandID)
	if b == nil {
		return repository.ErrNotFound
	}
	now := time.Now()
	b.DeletedAt = &now
	return nil
}

type fakeCategoryRepo struct {
	categories   []*models.Category
	nextID       int
	ancestorsErr error
}

func (r *fakeCategoryRepo) EntitySpec() query.EntitySpec {
	return repository.CategorySpec
}

func (r *fakeCategoryRepo) live() []*models.Category {
	var out []*models.Category
	for _, c := range r.categories {
		if c.DeletedAt == nil {
			out = append(out, c)
		}
	}
	return out
}

func (r *fakeCategoryRepo) records() ([]query.Record, map[string]*models.Category) {
	var records []query.Record
	byID := map[string]*models.Category{}
	for _, c := range r.live() {
		byID[c.ID] = c
		records = append(records, query.Record{
			"id":           c.ID,
			"name":         c.Name,
			"parent_id":    c.ParentID,
			"is_active":    c.IsActive,
			"warehouse_id": c.WarehouseID,
		})
	}
	return records, byID
}

func (r *fakeCategoryRepo) Count(ctx context.Context, scope query.Scope, filters []query.Filter) (int, error) {
	records, _ := r.records()
	return query.NewMemorySource(records).WithScopeField("warehouse_id").Count(ctx, scope, filters)
}

func (r *fakeCategoryRepo) Fetch(ctx context.Context, scope query.Scope, plan query.Plan, w query.Window) ([]*models.Category, error) {
	records, byID := r.records()
	return listByRecords(ctx, byID, records, scope, plan, w)
}

func (r *fakeCategoryRepo) find(id string) *models.Category {
	for _, c := range r.live() {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, _ query.Scope, req *models.CreateCategoryRequest) (*models.Category, error) {
	r.nextID++
	c := &models.Category{
		ID:       fmt.Sprintf("cat_%d", r.nextID),
		Name:     req.Name,
		ParentID: req.ParentID,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	r.categories = append(r.categories, c)
	return c, nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, _ query.Scope, params models.GetCategoryParams) (*models.Category, error) {
	if c := r.find(params.CategoryID); c != nil {
		return c, nil
	}
	return nil, repository.ErrNotFound
}

func (r *fakeCategoryRepo) Update(_ context.Context, _ query.Scope, req *models.UpdateCategoryRequest) (*models.Category, error) {
	c := r.find(req.ID)
	if c == nil {
		return nil, repository.ErrNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	switch {
	case req.ClearParent:
		c.ParentID = nil
	case req.ParentID != nil:
		c.ParentID = req.ParentID
	}
	return c, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, _ query.Scope, params models.DeleteCategoryParams) error {
	c := r.find(params.CategoryID)
	if c == nil {
		return repository.ErrNotFound
	}
	now := time.Now()
	c.DeletedAt = &now
	return nil
}

func (r *fakeCategoryRepo) Ancestors(_ context.Context, _ query.Scope, categoryID string) ([]string, error) {
	if r.ancestorsErr != nil {
		return nil, r.ancestorsErr
	}
	var chain []string
	for c := r.find(categoryID); c != nil; {
		chain = append(chain, c.ID)
		if c.ParentID == nil {
			break
		}
		c = r.find(*c.ParentID)
	}
	return chain, nil
}

func (r *fakeCategoryRepo) HasChildren(_ context.Context, _ query.Scope, categoryID string) (bool, error) {
	for _, c := range r.live() {
		if c.ParentID != nil && *c.ParentID == categoryID {
			return true, nil
		}
	}
	return false, nil
}

type fakeCache struct {
	entries     map[string][]byte
	loads       int
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Key(entity, list string, scope query.Scope) string {
	return entity + ":" + scope.WarehouseID + ":" + list
}

func (c *fakeCache) Load(_ context.Context, key string, dst any) (bool, error) {
	c.loads++
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (c *fakeCache) Store(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *fakeCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	c.invalidated = append(c.invalidated, keys...)
	return nil
}
