package fieldtype

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// Create adds a new catalog entry.
// Returns ErrAlreadyExists if the type key is taken.
func (s *Service) Create(ctx context.Context, input UpsertInput) (*domain.FieldType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.types.Create(ctx, &domain.FieldType{
		Type:        input.Type,
		Label:       input.Label,
		Icon:        input.Icon,
		DisplayIcon: input.DisplayIcon,
		Description: input.Description,
		Order:       input.Order,
		Active:      input.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("fieldtype.Create: %w", err)
	}

	s.log.InfoContext(ctx, "field type created", slog.String("type", created.Type))

	return created, nil
}

// Update replaces a catalog entry.
// Returns ErrNotFound if the entry does not exist.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpsertInput) (*domain.FieldType, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.types.Update(ctx, id, &domain.FieldType{
		Type:        input.Type,
		Label:       input.Label,
		Icon:        input.Icon,
		DisplayIcon: input.DisplayIcon,
		Description: input.Description,
		Order:       input.Order,
		Active:      input.Active,
	})
	if err != nil {
		return nil, fmt.Errorf("fieldtype.Update: %w", err)
	}

	s.log.InfoContext(ctx, "field type updated", slog.String("type", updated.Type))

	return updated, nil
}

// Delete removes a catalog entry.
// Returns ErrNotFound if the entry does not exist.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.types.Delete(ctx, id); err != nil {
		return fmt.Errorf("fieldtype.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "field type deleted", slog.String("id", id.String()))

	return nil
}
