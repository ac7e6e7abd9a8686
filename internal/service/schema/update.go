package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// Update replaces a collection's name, label, type and field list.
// A rename is re-checked for uniqueness within the caller's current stage,
// excluding the collection itself. The old backing storage keeps its name;
// records written before a rename stay under the old storage object.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpsertInput) (*domain.Collection, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalized()

	existing, err := s.getOwned(ctx, id, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("schema.Update: %w", err)
	}

	if input.Name != existing.Name {
		taken, err := s.collections.NameTaken(ctx, input.Name, sess.UserID, sess.Stage, id)
		if err != nil {
			return nil, fmt.Errorf("schema.Update check name: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("collection %q: %w", input.Name, domain.ErrAlreadyExists)
		}
	}

	updated, err := s.collections.Update(ctx, id, &domain.Collection{
		Name:   input.Name,
		Label:  input.Label,
		Type:   input.Type,
		Fields: input.Fields,
	})
	if err != nil {
		return nil, fmt.Errorf("schema.Update: %w", err)
	}

	s.log.InfoContext(ctx, "collection updated",
		slog.String("user_id", sess.UserID.String()),
		slog.String("collection_id", id.String()),
		slog.String("name", updated.Name))

	return updated, nil
}
