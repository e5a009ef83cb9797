package models

import "time"

type Brand struct {
	ID          string
	WarehouseID *string
	Name        string
	Slug        string
	Description *string
	Image       *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time

	// Set only when the warehouse relation is included.
	Warehouse *Warehouse
}

type CreateBrandRequest struct {
	Name        string
	Slug        string
	Description *string
	Image       *string
	IsActive    *bool
}

type UpdateBrandRequest struct {
	ID          string
	Name        *string
	Slug        *string
	Description *string
	Image       *string
	IsActive    *bool
}

type GetBrandParams struct {
	BrandID  string
	Includes []string
}

type DeleteBrandParams struct {
	BrandID string
}
