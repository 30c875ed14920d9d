package postgres

import (
	"context"
	"database/sql"

	"rescue-dashboard/internal/adapters/storage/sqlfilter"
	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Read(ctx context.Context, f query.Filter, p query.Projection) ([]animals.Record, error) {
	return sqlfilter.Read(ctx, r.db, sqlfilter.Postgres, f, p)
}

// Prepare crea animal_outcomes si falta y carga seed si la tabla está vacía.
func Prepare(ctx context.Context, db *sql.DB, seed []animals.Record) (int, error) {
	if err := sqlfilter.EnsureSchema(ctx, db, sqlfilter.Postgres); err != nil {
		return 0, err
	}
	return sqlfilter.SeedIfEmpty(ctx, db, sqlfilter.Postgres, seed)
}
