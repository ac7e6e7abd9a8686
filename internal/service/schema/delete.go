package schema

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// Delete removes a collection's metadata and then drops its backing record
// storage in the caller's current stage. The storage drop is best-effort:
// the metadata is already gone, so its failure is logged and swallowed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	c, err := s.getOwned(ctx, id, sess.UserID)
	if err != nil {
		return fmt.Errorf("schema.Delete: %w", err)
	}

	if err := s.collections.Delete(ctx, id); err != nil {
		return fmt.Errorf("schema.Delete: %w", err)
	}

	s.dropStorage(ctx, c.Stage, c.Name)

	s.log.InfoContext(ctx, "collection deleted",
		slog.String("user_id", sess.UserID.String()),
		slog.String("collection_id", id.String()),
		slog.String("name", c.Name),
		slog.String("stage", c.Stage))

	return nil
}
