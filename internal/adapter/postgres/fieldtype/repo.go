// Package fieldtype implements the field-type catalog repository using
// PostgreSQL. The catalog is UI metadata: which field types the collection
// builder offers, with labels, icons and display order. Mapping semantics
// live in domain.FieldKind and do not depend on this catalog.
package fieldtype

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/genialcrm/genial-backend/internal/adapter/postgres"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// Repo provides field-type catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new field-type repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listFieldTypesSQL = `
SELECT id, type, label, icon, display_icon, description, sort_order, active, created_at, updated_at
FROM field_types
WHERE active
ORDER BY sort_order`

const getFieldTypeByTypeSQL = `
SELECT id, type, label, icon, display_icon, description, sort_order, active, created_at, updated_at
FROM field_types
WHERE type = $1 AND active`

const countFieldTypesSQL = `SELECT count(*) FROM field_types`

const insertFieldTypeSQL = `
INSERT INTO field_types (id, type, label, icon, display_icon, description, sort_order, active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, type, label, icon, display_icon, description, sort_order, active, created_at, updated_at`

const updateFieldTypeSQL = `
UPDATE field_types
SET type = $2, label = $3, icon = $4, display_icon = $5, description = $6,
    sort_order = $7, active = $8, updated_at = $9
WHERE id = $1
RETURNING id, type, label, icon, display_icon, description, sort_order, active, created_at, updated_at`

const deleteFieldTypeSQL = `DELETE FROM field_types WHERE id = $1`

// List returns all active catalog entries ordered by sort order.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(ctx context.Context) ([]domain.FieldType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listFieldTypesSQL)
	if err != nil {
		return nil, fmt.Errorf("list field types: %w", err)
	}
	defer rows.Close()

	types, err := scanFieldTypes(rows)
	if err != nil {
		return nil, fmt.Errorf("list field types: %w", err)
	}

	return types, nil
}

// GetByType returns the active catalog entry with the given type key.
// Returns domain.ErrNotFound for unknown or inactive types.
func (r *Repo) GetByType(ctx context.Context, typeKey string) (*domain.FieldType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ft, err := scanFieldType(q.QueryRow(ctx, getFieldTypeByTypeSQL, typeKey))
	if err != nil {
		return nil, postgres.MapError(err, "field type", uuid.Nil)
	}

	return ft, nil
}

// Create inserts a new catalog entry.
// Returns domain.ErrAlreadyExists if the type key is taken.
func (r *Repo) Create(ctx context.Context, ft *domain.FieldType) (*domain.FieldType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := ft.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanFieldType(q.QueryRow(ctx, insertFieldTypeSQL,
		id, ft.Type, ft.Label, ft.Icon, ptrToText(ft.DisplayIcon), ptrToText(ft.Description),
		ft.Order, ft.Active, now, now))
	if err != nil {
		return nil, postgres.MapError(err, "field type", id)
	}

	return created, nil
}

// Update replaces a catalog entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, ft *domain.FieldType) (*domain.FieldType, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanFieldType(q.QueryRow(ctx, updateFieldTypeSQL,
		id, ft.Type, ft.Label, ft.Icon, ptrToText(ft.DisplayIcon), ptrToText(ft.Description),
		ft.Order, ft.Active, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "field type", id)
	}

	return updated, nil
}

// Delete removes a catalog entry.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteFieldTypeSQL, id)
	if err != nil {
		return postgres.MapError(err, "field type", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("field type %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Seed inserts the given entries only when the catalog is empty.
// A catalog with any rows, active or not, makes Seed a no-op.
func (r *Repo) Seed(ctx context.Context, types []domain.FieldType) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countFieldTypesSQL).Scan(&count); err != nil {
		return fmt.Errorf("count field types: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, ft := range types {
		id := ft.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		_, err := q.Exec(ctx, insertFieldTypeSQL,
			id, ft.Type, ft.Label, ft.Icon, ptrToText(ft.DisplayIcon), ptrToText(ft.Description),
			ft.Order, ft.Active, now, now)
		if err != nil {
			return postgres.MapError(err, "field type", id)
		}
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFieldType(row rowScanner) (*domain.FieldType, error) {
	var (
		ft          domain.FieldType
		displayIcon pgtype.Text
		description pgtype.Text
	)
	err := row.Scan(&ft.ID, &ft.Type, &ft.Label, &ft.Icon, &displayIcon, &description,
		&ft.Order, &ft.Active, &ft.CreatedAt, &ft.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if displayIcon.Valid {
		ft.DisplayIcon = &displayIcon.String
	}
	if description.Valid {
		ft.Description = &description.String
	}

	return &ft, nil
}

func scanFieldTypes(rows pgx.Rows) ([]domain.FieldType, error) {
	var result []domain.FieldType
	for rows.Next() {
		ft, err := scanFieldType(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ft)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.FieldType{}
	}

	return result, nil
}

// ptrToText converts a *string to pgtype.Text (nil → NULL).
func ptrToText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
