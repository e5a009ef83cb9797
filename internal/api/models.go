package api

import "encoding/json"

// Nullable tells an absent JSON key apart from an explicit null.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

// CreateBrandRequest represents the request body for creating a brand.
// @Description Request payload for creating a brand
type CreateBrandRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Image       *string `json:"image" validate:"omitempty,max=2048"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateBrandRequest represents the request body for updating a brand.
// @Description Request payload for updating a brand
type UpdateBrandRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Image       *string `json:"image" validate:"omitempty,max=2048"`
	IsActive    *bool   `json:"is_active"`
}

// CreateCategoryRequest represents the request body for creating a category.
// @Description Request payload for creating a category
type CreateCategoryRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	ParentID *string `json:"parent_id" validate:"omitempty,max=64"`
	Image    *string `json:"image" validate:"omitempty,max=2048"`
	IsActive *bool   `json:"is_active"`
}

// UpdateCategoryRequest represents the request body for updating a category.
// A null parent_id moves the category to the root.
// @Description Request payload for updating a category
type UpdateCategoryRequest struct {
	Name     *string          `json:"name" validate:"omitempty,max=255"`
	ParentID Nullable[string] `json:"parent_id" swaggertype:"string"`
	Image    *string          `json:"image" validate:"omitempty,max=2048"`
	IsActive *bool            `json:"is_active"`
}

// WarehouseResponse represents a warehouse embedded in another resource.
// @Description Warehouse resource
type WarehouseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// BrandResponse represents a brand resource in API responses.
// @Description Brand resource
type BrandResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Slug        string             `json:"slug"`
	Description *string            `json:"description"`
	Image       *string            `json:"image"`
	IsActive    bool               `json:"is_active"`
	WarehouseID *string            `json:"warehouse_id"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
	Warehouse   *WarehouseResponse `json:"warehouse,omitempty"`
}

// CategoryResponse represents a category resource in API responses.
// @Description Category resource
type CategoryResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Image       *string             `json:"image"`
	IsActive    bool                `json:"is_active"`
	ParentID    *string             `json:"parent_id"`
	WarehouseID *string             `json:"warehouse_id"`
	CreatedAt   string              `json:"created_at"`
	UpdatedAt   string              `json:"updated_at"`
	Parent      *CategoryResponse   `json:"parent,omitempty"`
	Children    []*CategoryResponse `json:"children,omitempty"`
	Warehouse   *WarehouseResponse  `json:"warehouse,omitempty"`
}
