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

// CategorySpec is what API consumers may filter, sort, include and select on
// categories. filter[parent_id]=null selects root categories.
var CategorySpec = query.EntitySpec{
	Filters: []query.AllowedFilter{
		query.ExactFilter("id"),
		query.PartialFilter("name"),
		query.ExactFilter("warehouse_id"),
		query.ExactFilter("parent_id"),
		query.ExactFilter("is_active"),
	},
	Sorts:    []string{"name", "created_at"},
	Includes: []string{"parent", "children", "warehouse"},
	Fields:   []string{"id", "name", "image", "is_active", "parent_id", "warehouse_id", "created_at", "updated_at"},
}

var categoriesTable = query.Table{
	Name:             "categories",
	PrimaryKey:       "id",
	ScopeColumn:      "warehouse_id",
	SoftDeleteColumn: "deleted_at",
	Booleans:         []string{"is_active"},
}

var categoryColumns = []string{
	"id", "warehouse_id", "parent_id", "name", "image",
	"is_active", "created_at", "updated_at", "deleted_at",
}

// maxTreeDepth bounds ancestor walks so that a cycle already present in the
// table cannot loop forever.
const maxTreeDepth = 64

type CategoryRepository struct {
	db         DBTX
	warehouses *WarehouseRepository
	newID      func() string
}

func NewCategoryRepository(db DBTX) *CategoryRepository {
	return &CategoryRepository{
		db:         db,
		warehouses: NewWarehouseRepository(db),
		newID:      id.Generator(id.CategoryPrefix),
	}
}

func (r *CategoryRepository) EntitySpec() query.EntitySpec {
	return CategorySpec
}

func (r *CategoryRepository) Create(ctx context.Context, scope query.Scope, req *models.CreateCategoryRequest) (*models.Category, error) {
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	sql, args, err := psql.Insert(categoriesTable.Name).
		Columns("id", "warehouse_id", "parent_id", "name", "image", "is_active").
		Values(r.newID(), scopeValue(scope), req.ParentID, req.Name, req.Image, active).
		Suffix(returning(categoryColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert category: %w", err)
	}

	category, err := scanCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, scope query.Scope, params models.GetCategoryParams) (*models.Category, error) {
	sb := psql.Select(categoryColumns...).From(categoriesTable.Name).Where(squirrel.Eq{"id": params.CategoryID})
	for _, c := range categoriesTable.Conditions(scope, nil) {
		sb = sb.Where(c)
	}
	sql, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}

	category, err := scanCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err)
	}

	if err := r.attach(ctx, scope, []*models.Category{category}, params.Includes); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) Update(ctx context.Context, scope query.Scope, req *models.UpdateCategoryRequest) (*models.Category, error) {
	ub := psql.Update(categoriesTable.Name).Set("updated_at", squirrel.Expr("now()"))
	if req.Name != nil {
		ub = ub.Set("name", *req.Name)
	}
	switch {
	case req.ClearParent:
		ub = ub.Set("parent_id", nil)
	case req.ParentID != nil:
		ub = ub.Set("parent_id", *req.ParentID)
	}
	if req.Image != nil {
		ub = ub.Set("image", *req.Image)
	}
	if req.IsActive != nil {
		ub = ub.Set("is_active", *req.IsActive)
	}

	ub = ub.Where(squirrel.Eq{"id": req.ID})
	for _, c := range categoriesTable.Conditions(scope, nil) {
		ub = ub.Where(c)
	}
	sql, args, err := ub.Suffix(returning(categoryColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category: %w", err)
	}

	category, err := scanCategory(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return category, nil
}

// Delete soft-deletes the category.
func (r *CategoryRepository) Delete(ctx context.Context, scope query.Scope, params models.DeleteCategoryParams) error {
	ub := psql.Update(categoriesTable.Name).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": params.CategoryID})
	for _, c := range categoriesTable.Conditions(scope, nil) {
		ub = ub.Where(c)
	}
	sql, args, err := ub.ToSql()
	if err != nil {
		return fmt.Errorf("build delete category: %w", err)
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

// Ancestors returns categoryID followed by its parent, grandparent and so on
// up to the root.
func (r *CategoryRepository) Ancestors(ctx context.Context, scope query.Scope, categoryID string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		WITH RECURSIVE chain (id, parent_id, depth) AS (
			SELECT id, parent_id, 0
			FROM categories
			WHERE id = $1 AND deleted_at IS NULL AND ($2::text IS NULL OR warehouse_id = $2)
			UNION ALL
			SELECT c.id, c.parent_id, chain.depth + 1
			FROM categories c
			JOIN chain ON c.id = chain.parent_id
			WHERE c.deleted_at IS NULL AND chain.depth < $3
		)
		SELECT id FROM chain ORDER BY depth`,
		categoryID, scopeValue(scope), maxTreeDepth,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// HasChildren reports whether any live category names categoryID as parent.
func (r *CategoryRepository) HasChildren(ctx context.Context, scope query.Scope, categoryID string) (bool, error) {
	sb := psql.Select("1").From(categoriesTable.Name).Where(squirrel.Eq{"parent_id": categoryID})
	for _, c := range categoriesTable.Conditions(scope, nil) {
		sb = sb.Where(c)
	}
	sql, args, err := sb.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build category children check: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *CategoryRepository) Count(ctx context.Context, scope query.Scope, filters []query.Filter) (int, error) {
	sql, args, err := categoriesTable.CountQuery(scope, filters).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count categories: %w", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *CategoryRepository) Fetch(ctx context.Context, scope query.Scope, plan query.Plan, window query.Window) ([]*models.Category, error) {
	sql, args, err := categoriesTable.SelectQuery(categoryColumns, scope, plan, window).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	categories, err := r.collect(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	if err := r.attach(ctx, scope, categories, plan.Includes); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) collect(ctx context.Context, sql string, args ...any) ([]*models.Category, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Category, error) {
		return scanCategory(row)
	})
}

func (r *CategoryRepository) attach(ctx context.Context, scope query.Scope, categories []*models.Category, includes []string) error {
	if len(categories) == 0 {
		return nil
	}

	if slices.Contains(includes, "parent") {
		parentIDs := make([]*string, len(categories))
		for i, c := range categories {
			parentIDs[i] = c.ParentID
		}
		parents, err := r.byColumn(ctx, scope, "id", uniqueStrings(parentIDs))
		if err != nil {
			return fmt.Errorf("load category parents: %w", err)
		}
		byID := make(map[string]*models.Category, len(parents))
		for _, p := range parents {
			byID[p.ID] = p
		}
		for _, c := range categories {
			if c.ParentID != nil {
				c.Parent = byID[*c.ParentID]
			}
		}
	}

	if slices.Contains(includes, "children") {
		ids := make([]string, len(categories))
		for i, c := range categories {
			ids[i] = c.ID
		}
		children, err := r.byColumn(ctx, scope, "parent_id", ids)
		if err != nil {
			return fmt.Errorf("load category children: %w", err)
		}
		byParent := make(map[string][]*models.Category)
		for _, child := range children {
			byParent[*child.ParentID] = append(byParent[*child.ParentID], child)
		}
		for _, c := range categories {
			c.Children = byParent[c.ID]
			if c.Children == nil {
				c.Children = []*models.Category{}
			}
		}
	}

	if slices.Contains(includes, "warehouse") {
		warehouseIDs := make([]*string, len(categories))
		for i, c := range categories {
			warehouseIDs[i] = c.WarehouseID
		}
		warehouses, err := r.warehouses.GetByIDs(ctx, uniqueStrings(warehouseIDs))
		if err != nil {
			return fmt.Errorf("load category warehouses: %w", err)
		}
		for _, c := range categories {
			if c.WarehouseID != nil {
				c.Warehouse = warehouses[*c.WarehouseID]
			}
		}
	}

	return nil
}

// byColumn loads live categories whose column matches any of values, in
// name order.
func (r *CategoryRepository) byColumn(ctx context.Context, scope query.Scope, column string, values []string) ([]*models.Category, error) {
	if len(values) == 0 {
		return nil, nil
	}
	sb := psql.Select(categoryColumns...).
		From(categoriesTable.Name).
		Where(squirrel.Expr(column+" = ANY(?)", values))
	for _, c := range categoriesTable.Conditions(scope, nil) {
		sb = sb.Where(c)
	}
	sql, args, err := sb.OrderBy("name ASC", "id ASC").ToSql()
	if err != nil {
		return nil, err
	}
	return r.collect(ctx, sql, args...)
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(
		&c.ID,
		&c.WarehouseID,
		&c.ParentID,
		&c.Name,
		&c.Image,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
