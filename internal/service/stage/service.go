// Package stage implements the stage catalog service. Stages are the
// fixed environments (dev, hml, prod) a user switches between; every
// collection and record lives in exactly one of them.
package stage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// stageRepo defines the stage repository interface needed by the service.
type stageRepo interface {
	List(ctx context.Context) ([]domain.Stage, error)
	GetByKey(ctx context.Context, key string) (*domain.Stage, error)
	Seed(ctx context.Context, stages []domain.Stage) error
}

// Service implements stage catalog operations.
type Service struct {
	log    *slog.Logger
	stages stageRepo
}

// NewService creates a new stage service instance.
func NewService(logger *slog.Logger, stages stageRepo) *Service {
	return &Service{
		log:    logger.With("service", "stage"),
		stages: stages,
	}
}

// List returns all active stages ordered by their sort order.
func (s *Service) List(ctx context.Context) ([]domain.Stage, error) {
	stages, err := s.stages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("stage.List: %w", err)
	}
	return stages, nil
}

// GetByKey returns the active stage with the given key.
// Returns ErrNotFound for unknown or inactive stages.
func (s *Service) GetByKey(ctx context.Context, key string) (*domain.Stage, error) {
	st, err := s.stages.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("stage.GetByKey: %w", err)
	}
	return st, nil
}

// Default returns the stage a fresh session starts in: the active stage
// with the lowest sort order. With an empty catalog it falls back to the
// built-in default key.
func (s *Service) Default(ctx context.Context) (string, error) {
	stages, err := s.stages.List(ctx)
	if err != nil {
		return "", fmt.Errorf("stage.Default: %w", err)
	}
	if len(stages) == 0 {
		return domain.DefaultStageKey, nil
	}
	return stages[0].Key, nil
}

// Seed populates the catalog with the default dev/hml/prod stages.
// A catalog with any rows makes this a no-op.
func (s *Service) Seed(ctx context.Context) error {
	if err := s.stages.Seed(ctx, DefaultStages()); err != nil {
		return fmt.Errorf("stage.Seed: %w", err)
	}

	s.log.InfoContext(ctx, "stage catalog seeded")
	return nil
}

// DefaultStages returns the built-in stage catalog.
func DefaultStages() []domain.Stage {
	return []domain.Stage{
		{Key: "dev", Label: "Dev", Letter: "D", Description: "Development environment", Order: 1, Active: true},
		{Key: "hml", Label: "HML", Letter: "H", Description: "Homologation environment", Order: 2, Active: true},
		{Key: "prod", Label: "Prod", Letter: "P", Description: "Production environment", Order: 3, Active: true},
	}
}
