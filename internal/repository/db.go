package repository

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourorg/inventory/internal/query"
)

// DBTX is the subset of *pgxkit.DB the repositories use.
type DBTX interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func scopeValue(scope query.Scope) *string {
	if scope.IsZero() {
		return nil
	}
	id := scope.WarehouseID
	return &id
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func uniqueStrings(values []*string) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if v == nil {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}
		out = append(out, *v)
	}
	return out
}
