package schema

import (
	"context"
	"fmt"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// List returns the caller's collections in their current stage, ordered
// by name.
func (s *Service) List(ctx context.Context) ([]*domain.Collection, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.ListByStage(ctx, sess.Stage)
}

// ListByStage returns the caller's collections in an explicit stage,
// regardless of the session's current one. Used by the stage overview.
func (s *Service) ListByStage(ctx context.Context, stage string) ([]*domain.Collection, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	collections, err := s.collections.ListByUser(ctx, sess.UserID, stage)
	if err != nil {
		return nil, fmt.Errorf("schema.ListByStage: %w", err)
	}

	return collections, nil
}
