package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yourorg/inventory/internal/id"
	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
)

// BrandSpec is what API consumers may filter, sort, include and select on
// brands.
var BrandSpec = query.EntitySpec{
	Filters: []query.AllowedFilter{
		query.ExactFilter("is_active"),
		query.PartialFilter("name"),
		query.PartialFilter("description"),
		query.PartialFilter("slug"),
		query.ExactFilter("warehouse_id"),
	},
	Sorts:    []string{"name", "slug", "is_active", "created_at", "updated_at"},
	Includes: []string{"warehouse"},
	Fields:   []string{"id", "name", "slug", "description", "image", "is_active", "warehouse_id", "created_at", "updated_at"},
}

var brandsTable = query.Table{
	Name:             "brands",
	PrimaryKey:       "id",
	ScopeColumn:      "warehouse_id",
	SoftDeleteColumn: "deleted_at",
	Booleans:         []string{"is_active"},
}

var brandColumns = []string{
	"id", "warehouse_id", "name", "slug", "description", "image",
	"is_active", "created_at", "updated_at", "deleted_at",
}

type BrandRepository struct {
	db         DBTX
	warehouses *WarehouseRepository
	newID      func() string
}

func NewBrandRepository(db DBTX) *BrandRepository {
	return &BrandRepository{
		db:         db,
		warehouses: NewWarehouseRepository(db),
		newID:      id.Generator(id.BrandPrefix),
	}
}

func (r *BrandRepository) EntitySpec() query.EntitySpec {
	return BrandSpec
}

func (r *BrandRepository) Create(ctx context.Context, scope query.Scope, req *models.CreateBrandRequest) (*models.Brand, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	sql, args, err := psql.Insert(brandsTable.Name).
		Columns("id", "warehouse_id", "name", "slug", "description", "image", "is_active").
		Values(r.newID(), scopeValue(scope), req.Name, req.Slug, req.Description, req.Image, active).
		Suffix(returning(brandColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert brand: %w", err)
	}

	brand, err := scanBrand(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return brand, nil
}

func (r *BrandRepository) GetByID(ctx context.Context, scope query.Scope, params models.GetBrandParams) (*models.Brand, error) {
	sb := psql.Select(brandColumns...).From(brandsTable.Name).Where(squirrel.Eq{"id": params.BrandID})
	for _, c := range brandsTable.Conditions(scope, nil) {
		sb = sb.Where(c)
	}
	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get brand: %w", err)
	}

	brand, err := scanBrand(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err)
	}

	if err := r.attach(ctx, []*models.Brand{brand}, params.Includes); err != nil {
		return nil, err
	}
	return brand, nil
}

func (r *BrandRepository) Update(ctx context.Context, scope query.Scope, req *models.UpdateBrandRequest) (*models.Brand, error) {
	ub := psql.Update(brandsTable.Name).Set("updated_at", squirrel.Expr("now()"))
	if req.Name != nil {
		ub = ub.Set("name", *req.Name)
	}
	if req.Slug != nil {
		ub = ub.Set("slug", *req.Slug)
	}
	if req.Description != nil {
		ub = ub.Set("description", *req.Description)
	}
	if req.Image != nil {
		ub = ub.Set("image", *req.Image)
	}
	if req.IsActive != nil {
		ub = ub.Set("is_active", *req.IsActive)
	}

	return r.updateOne(ctx, scope, req.ID, ub)
}

// ToggleActive flips is_active in place.
func (r *BrandRepository) ToggleActive(ctx context.Context, scope query.Scope, brandID string) (*models.Brand, error) {
	ub := psql.Update(brandsTable.Name).
		Set("is_active", squirrel.Expr("NOT is_active")).
		Set("updated_at", squirrel.Expr("now()"))
	return r.updateOne(ctx, scope, brandID, ub)
}

func (r *BrandRepository) updateOne(ctx context.Context, scope query.Scope, brandID string, ub squirrel.UpdateBuilder) (*models.Brand, error) {
	ub = ub.Where(squirrel.Eq{"id": brandID})
	for _, c := range brandsTable.Conditions(scope, nil) {
		ub = ub.Where(c)
	}
	sql, args, err := ub.Suffix(returning(brandColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update brand: %w", err)
	}

	brand, err := scanBrand(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return brand, nil
}

// Delete soft-deletes the brand.
func (r *BrandRepository) Delete(ctx context.Context, scope query.Scope, params models.DeleteBrandParams) error {
	ub := psql.Update(brandsTable.Name).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": params.BrandID})
	for _, c := range brandsTable.Conditions(scope, nil) {
		ub = ub.Where(c)
	}
	sql, args, err := ub.ToSql()
	if err != nil {
		return fmt.Errorf("build delete brand: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BrandRepository) Count(ctx context.Context, scope query.Scope, filters []query.Filter) (int, error) {
	sql, args, err := brandsTable.CountQuery(scope, filters).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count brands: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *BrandRepository) Fetch(ctx context.Context, scope query.Scope, plan query.Plan, window query.Window) ([]*models.Brand, error) {
	sql, args, err := brandsTable.SelectQuery(brandColumns, scope, plan, window).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list brands: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	brands, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Brand, error) {
		return scanBrand(row)
	})
	if err != nil {
		return nil, err
	}

	if err := r.attach(ctx, brands, plan.Includes); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) attach(ctx context.Context, brands []*models.Brand, includes []string) error {
	if !slices.Contains(includes, "warehouse") || len(brands) == 0 {
		return nil
	}

	ids := make([]*string, len(brands))
	for i, b := range brands {
		ids[i] = b.WarehouseID
	}
	warehouses, err := r.warehouses.GetByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		return fmt.Errorf("load brand warehouses: %w", err)
	}
	for _, b := range brands {
		if b.WarehouseID != nil {
			b.Warehouse = warehouses[*b.WarehouseID]
		}
	}
	return nil
}

func scanBrand(row pgx.Row) (*models.Brand, error) {
	var b models.Brand
	err := row.Scan(
		&b.ID,
		&b.WarehouseID,
		&b.Name,
		&b.Slug,
		&b.Description,
		&b.Image,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
