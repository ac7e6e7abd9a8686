package schema

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// Get returns one of the caller's collections by ID.
// Foreign or absent collections both return ErrNotFound.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.getOwned(ctx, id, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("schema.Get: %w", err)
	}

	return c, nil
}

// GetByName returns the caller's collection with the given system name in
// the given stage.
func (s *Service) GetByName(ctx context.Context, name, stage string) (*domain.Collection, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.collections.GetByName(ctx, name, sess.UserID, stage)
	if err != nil {
		return nil, fmt.Errorf("schema.GetByName: %w", err)
	}

	return c, nil
}
