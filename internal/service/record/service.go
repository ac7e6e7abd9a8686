// Package record implements record creation and listing: mapping raw
// payloads against a collection's declared schema into ordered typed
// documents, and storing them in the per-(stage, collection) storage.
package record

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
}

// documentStore defines the document store interface needed by the service.
type documentStore interface {
	Insert(ctx context.Context, storeName string, doc *domain.Document) error
	FindAll(ctx context.Context, storeName string) ([]map[string]any, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements record operations.
type Service struct {
	log         *slog.Logger
	collections collectionRepo
	store       documentStore
	tx          txManager
}

// NewService creates a new record service instance.
func NewService(logger *slog.Logger, collections collectionRepo, store documentStore, tx txManager) *Service {
	return &Service{
		log:         logger.With("service", "record"),
		collections: collections,
		store:       store,
		tx:          tx,
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
