package models

// Warehouse is the tenant that owns brands and categories.
type Warehouse struct {
	ID   string
	Name string
	Code string
}
