package migration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
	"github.com/genialcrm/genial-backend/pkg/ctxutil"
)

// CheckResult is the read-only migration preview.
type CheckResult struct {
	Exists       bool                     `json:"exists"`
	SourceFields []domain.CollectionField `json:"sourceFields"`
	TargetFields []domain.CollectionField `json:"targetFields"`
	NewFields    []domain.CollectionField `json:"newFields"`
	Message      string                   `json:"message"`
}

// Check reports what Migrate would do, without changing anything. An empty
// targetName falls back to the source collection's own name. Field lists
// in the report are ordered by their order value.
func (s *Service) Check(ctx context.Context, sourceID uuid.UUID, targetStage, targetName string) (*CheckResult, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	source, err := s.getOwnedSource(ctx, sourceID, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("migration.Check: %w", err)
	}

	name := strings.TrimSpace(targetName)
	if name == "" {
		name = source.Name
	}

	target, err := s.collections.GetByName(ctx, name, sess.UserID, targetStage)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("migration.Check: %w", err)
	}

	if target == nil {
		return &CheckResult{
			Exists:       false,
			SourceFields: sortedByOrder(source.Fields),
			TargetFields: []domain.CollectionField{},
			NewFields:    sortedByOrder(source.Fields),
			Message:      "Collection does not exist in target stage. It will be created.",
		}, nil
	}

	fresh := newByName(source.Fields, target.Fields)

	message := "Collection exists and is identical."
	if len(fresh) > 0 {
		message = fmt.Sprintf("Collection exists. %d new field(s) will be added.", len(fresh))
	}

	return &CheckResult{
		Exists:       true,
		SourceFields: sortedByOrder(source.Fields),
		TargetFields: sortedByOrder(target.Fields),
		NewFields:    sortedByOrder(fresh),
		Message:      message,
	}, nil
}

// sortedByOrder returns a copy of fields sorted by their order value.
// Always returns a non-nil slice so reports serialize as [] rather than null.
func sortedByOrder(fields []domain.CollectionField) []domain.CollectionField {
	out := make([]domain.CollectionField, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
