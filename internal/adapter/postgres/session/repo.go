// Package session implements the login-session repository using PostgreSQL.
// A session row is the server-side half of an access token: the token's jti
// is the row's primary key, and the row carries the only mutable piece of
// session state, the active stage.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/genialcrm/genial-backend/internal/adapter/postgres"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSessionSQL = `
INSERT INTO sessions (id, user_id, email, stage, created_at, expires_at)
VALUES ($1, $2, $3, $4, now(), $5)`

const getSessionSQL = `
SELECT id, user_id, email, stage, created_at, expires_at
FROM sessions
WHERE id = $1 AND expires_at > now()`

const updateStageSQL = `UPDATE sessions SET stage = $2 WHERE id = $1`

const deleteSessionSQL = `DELETE FROM sessions WHERE id = $1`

const deleteExpiredSQL = `DELETE FROM sessions WHERE expires_at <= now()`

// Create inserts a new session row.
func (r *Repo) Create(ctx context.Context, s *domain.Session) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, createSessionSQL, s.ID, s.UserID, s.Email, s.Stage, s.ExpiresAt)
	if err != nil {
		return postgres.MapError(err, "session", s.ID)
	}

	return nil
}

// GetByID returns a live (non-expired) session.
// Returns domain.ErrNotFound for unknown, deleted, or expired sessions.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.Session
	err := q.QueryRow(ctx, getSessionSQL, id).
		Scan(&s.ID, &s.UserID, &s.Email, &s.Stage, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		return nil, postgres.MapError(err, "session", id)
	}

	return &s, nil
}

// UpdateStage changes the session's active stage.
// Returns domain.ErrNotFound if the session is absent.
func (r *Repo) UpdateStage(ctx context.Context, id uuid.UUID, stage string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateStageSQL, id, stage)
	if err != nil {
		return postgres.MapError(err, "session", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a session. Deleting an absent session is not an error:
// logout must be idempotent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSessionSQL, id); err != nil {
		return postgres.MapError(err, "session", id)
	}

	return nil
}

// DeleteExpired removes all expired sessions and returns how many were dropped.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
