// Package collection implements the collection metadata repository using
// PostgreSQL. The field list of each collection is persisted as a JSONB
// column: schemas are user-authored data here, not database structure.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/genialcrm/genial-backend/internal/adapter/postgres"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// Repo provides collection metadata persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const collectionColumns = "id, name, label, type, fields, user_id, stage, created_at, updated_at"

const createCollectionSQL = `
INSERT INTO collections (id, name, label, type, fields, user_id, stage, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + collectionColumns

const updateCollectionSQL = `
UPDATE collections
SET name = $2, label = $3, type = $4, fields = $5, updated_at = $6
WHERE id = $1
RETURNING ` + collectionColumns

const getCollectionByIDSQL = `
SELECT ` + collectionColumns + `
FROM collections
WHERE id = $1`

const deleteCollectionSQL = `DELETE FROM collections WHERE id = $1`

// Create inserts a new collection with fresh timestamps.
// Returns domain.ErrAlreadyExists when (user_id, stage, name) is taken.
func (r *Repo) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	fields, err := marshalFields(c.Fields)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", c.Name, err)
	}

	id := c.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := time.Now().UTC()

	created, err := scanCollection(q.QueryRow(ctx, createCollectionSQL,
		id, c.Name, c.Label, c.Type, fields, c.UserID, c.Stage, now, now))
	if err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}

	return created, nil
}

// Update replaces a collection's name, label, type and field list, and
// bumps updated_at. Returns domain.ErrNotFound if the row is absent.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, c *domain.Collection) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	fields, err := marshalFields(c.Fields)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", id, err)
	}

	updated, err := scanCollection(q.QueryRow(ctx, updateCollectionSQL,
		id, c.Name, c.Label, c.Type, fields, time.Now().UTC()))
	if err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}

	return updated, nil
}

// GetByID returns a collection by primary key, regardless of owner.
// Ownership checks are the schema service's job.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCollection(q.QueryRow(ctx, getCollectionByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "collection", id)
	}

	return c, nil
}

// GetByName returns the collection with the given system name for
// (userID, stage). Returns domain.ErrNotFound when absent.
func (r *Repo) GetByName(ctx context.Context, name string, userID uuid.UUID, stage string) (*domain.Collection, error) {
	return r.getByNameExcluding(ctx, name, userID, stage, uuid.Nil)
}

// NameTaken reports whether a collection other than excludeID already uses
// the system name within (userID, stage). excludeID uuid.Nil checks all.
func (r *Repo) NameTaken(ctx context.Context, name string, userID uuid.UUID, stage string, excludeID uuid.UUID) (bool, error) {
	_, err := r.getByNameExcluding(ctx, name, userID, stage, excludeID)
	if err != nil {
		if postgres.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *Repo) getByNameExcluding(ctx context.Context, name string, userID uuid.UUID, stage string, excludeID uuid.UUID) (*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.Select("id", "name", "label", "type", "fields", "user_id", "stage", "created_at", "updated_at").
		From("collections").
		Where(sq.Eq{"name": name, "user_id": userID, "stage": stage})
	if excludeID != uuid.Nil {
		builder = builder.Where(sq.NotEq{"id": excludeID})
	}

	sqlStr, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build collection query: %w", err)
	}

	c, err := scanCollection(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collection", uuid.Nil)
	}

	return c, nil
}

// ListByUser returns all collections of a user within one stage, ordered
// by name. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, stage string) ([]*domain.Collection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sqlStr, args, err := psql.Select("id", "name", "label", "type", "fields", "user_id", "stage", "created_at", "updated_at").
		From("collections").
		Where(sq.Eq{"user_id": userID, "stage": stage}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	result, err := scanCollections(rows)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	return result, nil
}

// Delete removes a collection's metadata. The per-stage record storage is
// dropped separately (and best-effort) by the schema service.
// Returns domain.ErrNotFound if the row is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteCollectionSQL, id)
	if err != nil {
		return postgres.MapError(err, "collection", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollection(row rowScanner) (*domain.Collection, error) {
	var (
		c         domain.Collection
		rawFields []byte
	)
	err := row.Scan(&c.ID, &c.Name, &c.Label, &c.Type, &rawFields, &c.UserID, &c.Stage, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(rawFields, &c.Fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	if c.Fields == nil {
		c.Fields = []domain.CollectionField{}
	}

	return &c, nil
}

func scanCollections(rows pgx.Rows) ([]*domain.Collection, error) {
	var result []*domain.Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Collection{}
	}

	return result, nil
}

func marshalFields(fields []domain.CollectionField) ([]byte, error) {
	if fields == nil {
		fields = []domain.CollectionField{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return raw, nil
}
