package api

import (
	"time"

	"github.com/yourorg/inventory/internal/models"
	"github.com/yourorg/inventory/internal/query"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func convertToWarehouseResponse(w *models.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	return &WarehouseResponse{ID: w.ID, Name: w.Name, Code: w.Code}
}

func convertToBrandResponse(b *models.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		Slug:        b.Slug,
		Description: b.Description,
		Image:       b.Image,
		IsActive:    b.IsActive,
		WarehouseID: b.WarehouseID,
		CreatedAt:   formatTime(b.CreatedAt),
		UpdatedAt:   formatTime(b.UpdatedAt),
		Warehouse:   convertToWarehouseResponse(b.Warehouse),
	}
}

func convertToBrandResponses(brands []*models.Brand) []BrandResponse {
	out := make([]BrandResponse, len(brands))
	for i, b := range brands {
		out[i] = convertToBrandResponse(b)
	}
	return out
}

func convertToCategoryResponse(c *models.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	resp := &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Image:       c.Image,
		IsActive:    c.IsActive,
		ParentID:    c.ParentID,
		WarehouseID: c.WarehouseID,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
		Parent:      convertToCategoryResponse(c.Parent),
		Warehouse:   convertToWarehouseResponse(c.Warehouse),
	}
	if c.Children != nil {
		resp.Children = convertToCategoryResponses(c.Children)
	}
	return resp
}

func convertToCategoryResponses(categories []*models.Category) []*CategoryResponse {
	out := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = convertToCategoryResponse(c)
	}
	return out
}

// brandRecord flattens a brand for projection. Relations appear only when
// they were loaded, so an included but empty relation renders as null.
func brandRecord(includes []string) func(*models.Brand) query.Record {
	return func(b *models.Brand) query.Record {
		resp := convertToBrandResponse(b)
		rec := query.Record{
			"id":           resp.ID,
			"name":         resp.Name,
			"slug":         resp.Slug,
			"description":  resp.Description,
			"image":        resp.Image,
			"is_active":    resp.IsActive,
			"warehouse_id": resp.WarehouseID,
			"created_at":   resp.CreatedAt,
			"updated_at":   resp.UpdatedAt,
		}
		for _, inc := range includes {
			if inc == "warehouse" {
				rec["warehouse"] = resp.Warehouse
			}
		}
		return rec
	}
}

func categoryRecord(includes []string) func(*models.Category) query.Record {
	return func(c *models.Category) query.Record {
		resp := convertToCategoryResponse(c)
		rec := query.Record{
			"id":           resp.ID,
			"name":         resp.Name,
			"image":        resp.Image,
			"is_active":    resp.IsActive,
			"parent_id":    resp.ParentID,
			"warehouse_id": resp.WarehouseID,
			"created_at":   resp.CreatedAt,
			"updated_at":   resp.UpdatedAt,
		}
		for _, inc := range includes {
			switch inc {
			case "parent":
				rec["parent"] = resp.Parent
			case "children":
				children := resp.Children
				if children == nil {
					children = []*CategoryResponse{}
				}
				rec["children"] = children
			case "warehouse":
				rec["warehouse"] = resp.Warehouse
			}
		}
		return rec
	}
}
