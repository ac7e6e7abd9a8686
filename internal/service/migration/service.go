// Package migration implements the stage migration engine: promoting a
// collection's schema from one stage to another. Migration moves schemas
// only, never records, and is additive-only: fields already present in the
// target (matched by name alone) are never touched.
package migration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// collectionRepo defines the collection repository interface needed by the service.
type collectionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByName(ctx context.Context, name string, userID uuid.UUID, stage string) (*domain.Collection, error)
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, id uuid.UUID, c *domain.Collection) (*domain.Collection, error)
}

// stageCatalog defines the stage catalog interface needed by the service.
type stageCatalog interface {
	GetByKey(ctx context.Context, key string) (*domain.Stage, error)
}

// Service implements stage migration operations.
type Service struct {
	log         *slog.Logger
	collections collectionRepo
	stages      stageCatalog
}

// NewService creates a new migration service instance.
func NewService(logger *slog.Logger, collections collectionRepo, stages stageCatalog) *Service {
	return &Service{
		log:         logger.With("service", "migration"),
		collections: collections,
		stages:      stages,
	}
}

// getOwnedSource fetches the source collection and verifies ownership.
// A foreign collection is reported as absent, not as forbidden.
func (s *Service) getOwnedSource(ctx context.Context, id, userID uuid.UUID) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// newByName returns the source fields whose name does not appear in the
// target, in source declaration order. The diff is by name only: type,
// label or order changes on an already-present name are not detected.
func newByName(source, target []domain.CollectionField) []domain.CollectionField {
	targetNames := make(map[string]struct{}, len(target))
	for _, f := range target {
		targetNames[f.Name] = struct{}{}
	}

	var fresh []domain.CollectionField
	for _, f := range source {
		if _, ok := targetNames[f.Name]; !ok {
			fresh = append(fresh, f)
		}
	}
	return fresh
}
