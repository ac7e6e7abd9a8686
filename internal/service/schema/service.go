// Package schema implements the collection manager: creating, editing and
// deleting the user-defined record schemas that the record mapper and the
// stage migration engine consume.
package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/adapter/postgres/docstore"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// DefaultCollectionType is assigned when a collection is created without
// an explicit type.
const DefaultCollectionType = "Base"

// collectionRepo defines the collection repository interface needed by the service.
type collectionRepo interface {
	Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	Update(ctx context.Context, id uuid.UUID, c *domain.Collection) (*domain.Collection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByName(ctx context.Context, name string, userID uuid.UUID, stage string) (*domain.Collection, error)
	NameTaken(ctx context.Context, name string, userID uuid.UUID, stage string, excludeID uuid.UUID) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, stage string) ([]*domain.Collection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// recordStore defines the document store interface needed by the service.
type recordStore interface {
	Drop(ctx context.Context, storeName string) error
}

// Service implements collection management operations.
type Service struct {
	log         *slog.Logger
	collections collectionRepo
	records     recordStore
}

// NewService creates a new schema service instance.
func NewService(logger *slog.Logger, collections collectionRepo, records recordStore) *Service {
	return &Service{
		log:         logger.With("service", "schema"),
		collections: collections,
		records:     records,
	}
}

// getOwned fetches a collection and verifies it belongs to userID.
// A foreign collection is reported as absent, not as forbidden.
func (s *Service) getOwned(ctx context.Context, id, userID uuid.UUID) (*domain.Collection, error) {
	c, err := s.collections.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("collection %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// dropStorage drops the backing record storage for (stage, name). Failures
// are logged, never surfaced: metadata removal already succeeded and the
// orphaned table is harmless.
func (s *Service) dropStorage(ctx context.Context, stage, name string) {
	storeName := docstore.StorageName(stage, name)
	if err := s.records.Drop(ctx, storeName); err != nil && !errors.Is(err, context.Canceled) {
		s.log.WarnContext(ctx, "failed to drop record storage",
			slog.String("store", storeName),
			slog.String("error", err.Error()))
	}
}
