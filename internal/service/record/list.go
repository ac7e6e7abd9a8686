package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/adapter/postgres/docstore"
	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// List returns all records of a collection in the caller's current stage,
// oldest first. A collection whose storage was never materialized has no
// records, which is not an error.
func (s *Service) List(ctx context.Context, collectionID uuid.UUID) ([]map[string]any, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.getOwned(ctx, collectionID, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("record.List: %w", err)
	}

	records, err := s.store.FindAll(ctx, docstore.StorageName(sess.Stage, c.Name))
	if err != nil {
		return nil, fmt.Errorf("record.List: %w", err)
	}

	return records, nil
}
