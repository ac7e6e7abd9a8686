// Package docstore is the document store adapter: schemaless record
// storage addressed by dynamically named, per-(stage, collection) tables.
// Each user-defined schema gets its own backing table, created the first
// time a record is written. "Not yet materialized" is a normal state for
// a collection that has no records.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/genialcrm/genial-backend/internal/adapter/postgres"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// SystemFieldID is the record key of the generated identifier.
const SystemFieldID = "_id"

// StorageName returns the backing table name for a collection within a
// stage: "{stage}_{systemName}". This naming convention is the sole
// stage-isolation mechanism at the storage layer; per-user isolation is
// enforced upstream by the schema service's ownership checks.
func StorageName(stage, systemName string) string {
	return stage + "_" + systemName
}

// Store provides schemaless record persistence backed by PostgreSQL.
// Records are whole JSONB documents; the id/created/updated columns are
// duplicated out of the document purely for keying and ordering.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a new document store.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Insert persists the document into the named storage object, creating the
// backing table if it does not exist yet. The document must already carry
// its system fields (_id, created, updated); the whole document is written
// or nothing is.
func (s *Store) Insert(ctx context.Context, storeName string, doc *domain.Document) error {
	q := postgres.QuerierFromCtx(ctx, s.pool)
	table := pgx.Identifier{storeName}.Sanitize()

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id      uuid PRIMARY KEY,
		doc     jsonb NOT NULL,
		created timestamptz NOT NULL,
		updated timestamptz NOT NULL
	)`, table)
	if _, err := q.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("materialize %s: %w", storeName, err)
	}

	id, created, updated := systemColumns(doc)

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document for %s: %w", storeName, err)
	}

	insertSQL := fmt.Sprintf(`INSERT INTO %s (id, doc, created, updated) VALUES ($1, $2, $3, $4)`, table)
	if _, err := q.Exec(ctx, insertSQL, id, raw, created, updated); err != nil {
		return postgres.MapError(err, "record", id)
	}

	return nil
}

// FindAll returns every document in the named storage object, oldest
// first. A storage object that was never materialized yields an empty
// slice, never an error.
func (s *Store) FindAll(ctx context.Context, storeName string) ([]map[string]any, error) {
	q := postgres.QuerierFromCtx(ctx, s.pool)
	table := pgx.Identifier{storeName}.Sanitize()

	rows, err := q.Query(ctx, fmt.Sprintf(`SELECT doc FROM %s ORDER BY created`, table))
	if err != nil {
		if postgres.IsUndefinedTable(err) {
			return []map[string]any{}, nil
		}
		return nil, fmt.Errorf("find all %s: %w", storeName, err)
	}
	defer rows.Close()

	var docs []map[string]any
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", storeName, err)
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode document from %s: %w", storeName, err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find all %s: %w", storeName, err)
	}

	if docs == nil {
		docs = []map[string]any{}
	}

	return docs, nil
}

// Drop removes the named storage object. Dropping one that was never
// materialized is a silent no-op.
func (s *Store) Drop(ctx context.Context, storeName string) error {
	q := postgres.QuerierFromCtx(ctx, s.pool)
	table := pgx.Identifier{storeName}.Sanitize()

	if _, err := q.Exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
		return fmt.Errorf("drop %s: %w", storeName, err)
	}

	return nil
}

// systemColumns pulls the keying columns out of the document, generating
// fallbacks for documents that somehow lack them.
func systemColumns(doc *domain.Document) (id uuid.UUID, created, updated time.Time) {
	id = uuid.New()
	if v, ok := doc.Get(SystemFieldID); ok && v.Kind == domain.ValueID {
		id = v.ID
	}

	now := time.Now().UTC()
	created, updated = now, now
	if v, ok := doc.Get("created"); ok && v.Kind == domain.ValueTime {
		created = v.Time
	}
	if v, ok := doc.Get("updated"); ok && v.Kind == domain.ValueTime {
		updated = v.Time
	}

	return id, created, updated
}
