package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Backend executes the planner's operations against PostgreSQL. Column
// names are underscore_case in the schema and mapped to the camelCase
// domain fields at scan time.
type Backend struct {
	pool *pgxpool.Pool
}

func NewBackend(pool *pgxpool.Pool) *Backend {
	return &Backend{pool: pool}
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.pool.Ping(ctx)
}
