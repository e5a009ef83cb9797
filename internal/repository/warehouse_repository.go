package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yourorg/inventory/internal/models"
)

type WarehouseRepository struct {
	db DBTX
}

func NewWarehouseRepository(db DBTX) *WarehouseRepository {
	return &WarehouseRepository{db: db}
}

// GetByIDs loads the warehouses with the given ids, keyed by id. Missing ids
// are absent from the map.
func (r *WarehouseRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*models.Warehouse, error) {
	out := make(map[string]*models.Warehouse, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT id, name, code FROM warehouses WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	warehouses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Warehouse, error) {
		var w models.Warehouse
		err := row.Scan(&w.ID, &w.Name, &w.Code)
		return &w, err
	})
	if err != nil {
		return nil, err
	}

	for _, w := range warehouses {
		out[w.ID] = w
	}
	return out, nil
}
