package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// Create adds a new collection in the caller's current stage.
// Returns ErrAlreadyExists when the name is taken within (user, stage).
func (s *Service) Create(ctx context.Context, input UpsertInput) (*domain.Collection, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalized()

	// Friendly pre-check; the partial unique index backs it up under races.
	taken, err := s.collections.NameTaken(ctx, input.Name, sess.UserID, sess.Stage, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("schema.Create check name: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("collection %q: %w", input.Name, domain.ErrAlreadyExists)
	}

	created, err := s.collections.Create(ctx, &domain.Collection{
		Name:   input.Name,
		Label:  input.Label,
		Type:   input.Type,
		Fields: input.Fields,
		UserID: sess.UserID,
		Stage:  sess.Stage,
	})
	if err != nil {
		return nil, fmt.Errorf("schema.Create: %w", err)
	}

	s.log.InfoContext(ctx, "collection created",
		slog.String("user_id", sess.UserID.String()),
		slog.String("collection_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.String("stage", created.Stage))

	return created, nil
}
