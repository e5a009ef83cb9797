package models

import "time"

type Category struct {
	ID          string
	WarehouseID *string
	ParentID    *string
	Name        string
	Image       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// Relations, populated only when included.
	Parent    *Category
	Children  []*Category
	Warehouse *Warehouse
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

type CreateCategoryRequest struct {
	Name     string
	ParentID *string
	Image    *string
	IsActive *bool
}

// UpdateCategoryRequest changes only the fields that are set. ClearParent
// moves the category to the root, since a nil ParentID means "unchanged".
type UpdateCategoryRequest struct {
	ID          string
	Name        *string
	ParentID    *string
	ClearParent bool
	Image       *string
	IsActive    *bool
}

type GetCategoryParams struct {
	CategoryID string
	Includes   []string
}

type DeleteCategoryParams struct {
	CategoryID string
}
