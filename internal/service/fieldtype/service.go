// Package fieldtype implements the field-type catalog service: the list
// of field types the collection builder offers, with labels, icons and
// display order.
package fieldtype

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// fieldTypeRepo defines the repository interface needed by the service.
type fieldTypeRepo interface {
	List(ctx context.Context) ([]domain.FieldType, error)
	GetByType(ctx context.Context, typeKey string) (*domain.FieldType, error)
	Create(ctx context.Context, ft *domain.FieldType) (*domain.FieldType, error)
	Update(ctx context.Context, id uuid.UUID, ft *domain.FieldType) (*domain.FieldType, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Seed(ctx context.Context, types []domain.FieldType) error
}

// Service implements field-type catalog operations.
type Service struct {
	log   *slog.Logger
	types fieldTypeRepo
}

// NewService creates a new field-type service instance.
func NewService(logger *slog.Logger, types fieldTypeRepo) *Service {
	return &Service{
		log:   logger.With("service", "fieldtype"),
		types: types,
	}
}

// List returns all active catalog entries ordered by display order.
func (s *Service) List(ctx context.Context) ([]domain.FieldType, error) {
	types, err := s.types.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("fieldtype.List: %w", err)
	}
	return types, nil
}

// GetByType returns the active catalog entry with the given type key.
// Returns ErrNotFound for unknown or inactive types.
func (s *Service) GetByType(ctx context.Context, typeKey string) (*domain.FieldType, error) {
	ft, err := s.types.GetByType(ctx, typeKey)
	if err != nil {
		return nil, fmt.Errorf("fieldtype.GetByType: %w", err)
	}
	return ft, nil
}
