// Package stage implements the stage catalog repository using PostgreSQL.
package stage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/genialcrm/genial-backend/internal/adapter/postgres"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// Repo provides stage catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listStagesSQL = `
SELECT id, key, label, letter, description, sort_order, active
FROM stages
WHERE active
ORDER BY sort_order`

const getStageByKeySQL = `
SELECT id, key, label, letter, description, sort_order, active
FROM stages
WHERE key = $1 AND active`

const countStagesSQL = `SELECT count(*) FROM stages`

const insertStageSQL = `
INSERT INTO stages (id, key, label, letter, description, sort_order, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

// List returns all active stages ordered by sort order.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.Stage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listStagesSQL)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	defer rows.Close()

	stages, err := scanStages(rows)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}

	return stages, nil
}

// GetByKey returns the active stage with the given key.
// Returns domain.ErrNotFound for unknown or inactive keys.
func (r *Repo) GetByKey(ctx context.Context, key string) (*domain.Stage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Stage
	err := q.QueryRow(ctx, getStageByKeySQL, key).
		Scan(&s.ID, &s.Key, &s.Label, &s.Letter, &s.Description, &s.Order, &s.Active)
	if err != nil {
		return nil, postgres.MapError(err, "stage", uuid.Nil)
	}

	return &s, nil
}

// Seed inserts the given stages only when the catalog is empty.
// A catalog with any rows, active or not, makes Seed a no-op.
func (r *Repo) Seed(ctx context.Context, stages []domain.Stage) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countStagesSQL).Scan(&count); err != nil {
		return fmt.Errorf("count stages: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, s := range stages {
		id := s.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		if _, err := q.Exec(ctx, insertStageSQL, id, s.Key, s.Label, s.Letter, s.Description, s.Order, s.Active); err != nil {
			return postgres.MapError(err, "stage", id)
		}
	}

	return nil
}

func scanStages(rows pgx.Rows) ([]domain.Stage, error) {
	var result []domain.Stage
	for rows.Next() {
		var s domain.Stage
		if err := rows.Scan(&s.ID, &s.Key, &s.Label, &s.Letter, &s.Description, &s.Order, &s.Active); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Stage{}
	}

	return result, nil
}
