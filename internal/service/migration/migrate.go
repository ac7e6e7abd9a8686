package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// MigrateResult reports what a migration did.
type MigrateResult struct {
	Created     bool   `json:"created"`
	FieldsAdded int    `json:"fieldsAdded"`
	Message     string `json:"message"`
}

// Migrate promotes a collection's schema into the target stage. If no
// collection with the resolved name exists there, a clone of the schema is
// created; otherwise only new-by-name fields are appended. Existing target
// fields are never removed, reordered or overwritten. Records are not
// copied.
func (s *Service) Migrate(ctx context.Context, sourceID uuid.UUID, targetStage, targetName string) (*MigrateResult, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	source, err := s.getOwnedSource(ctx, sourceID, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("migration.Migrate: %w", err)
	}

	stage, err := s.stages.GetByKey(ctx, targetStage)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("targetStage", "invalid target stage")
		}
		return nil, fmt.Errorf("migration.Migrate: %w", err)
	}

	name := strings.TrimSpace(targetName)
	if name == "" {
		name = source.Name
	}

	target, err := s.collections.GetByName(ctx, name, sess.UserID, targetStage)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("migration.Migrate: %w", err)
	}

	if target == nil {
		created, err := s.collections.Create(ctx, &domain.Collection{
			Name:   name,
			Label:  source.Label,
			Type:   source.Type,
			Fields: source.Fields,
			UserID: sess.UserID,
			Stage:  targetStage,
		})
		if err != nil {
			return nil, fmt.Errorf("migration.Migrate create target: %w", err)
		}

		s.log.InfoContext(ctx, "collection migrated",
			slog.String("source_id", sourceID.String()),
			slog.String("target_id", created.ID.String()),
			slog.String("target_stage", targetStage))

		return &MigrateResult{
			Created: true,
			Message: fmt.Sprintf("Collection '%s' created successfully in %s stage.", name, stage.Label),
		}, nil
	}

	fresh := newByName(source.Fields, target.Fields)
	if len(fresh) == 0 {
		return &MigrateResult{
			Message: "Collection already exists and is identical. No changes made.",
		}, nil
	}

	s.flagOrderCollisions(ctx, target, fresh)

	// Appended fields keep their source order values verbatim; no
	// renumbering pass.
	target.Fields = append(target.Fields, fresh...)

	if _, err := s.collections.Update(ctx, target.ID, target); err != nil {
		return nil, fmt.Errorf("migration.Migrate update target: %w", err)
	}

	s.log.InfoContext(ctx, "collection fields migrated",
		slog.String("source_id", sourceID.String()),
		slog.String("target_id", target.ID.String()),
		slog.String("target_stage", targetStage),
		slog.Int("fields_added", len(fresh)))

	return &MigrateResult{
		FieldsAdded: len(fresh),
		Message:     fmt.Sprintf("%d new field(s) added to collection '%s' in %s stage.", len(fresh), name, stage.Label),
	}, nil
}

// flagOrderCollisions logs appended fields whose order value is already
// used by an existing target field.
func (s *Service) flagOrderCollisions(ctx context.Context, target *domain.Collection, fresh []domain.CollectionField) {
	used := make(map[int]string, len(target.Fields))
	for _, f := range target.Fields {
		used[f.Order] = f.Name
	}

	for _, f := range fresh {
		if existing, ok := used[f.Order]; ok {
			s.log.WarnContext(ctx, "field order collision in migration target",
				slog.String("target_id", target.ID.String()),
				slog.String("field", f.Name),
				slog.String("collides_with", existing),
				slog.Int("order", f.Order))
		}
	}
}
