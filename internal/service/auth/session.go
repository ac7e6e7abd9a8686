package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// Resolve turns a bearer token into the request-scoped session identity.
// Any failure along the way (bad signature, expired token, revoked or
// expired session row) is ErrUnauthorized.
func (s *Service) Resolve(ctx context.Context, token string) (domain.SessionContext, uuid.UUID, error) {
	userID, sessionID, err := s.jwt.ValidateSessionToken(token)
	if err != nil {
		return domain.SessionContext{}, uuid.Nil, fmt.Errorf("auth.Resolve: %w", domain.ErrUnauthorized)
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.SessionContext{}, uuid.Nil, fmt.Errorf("auth.Resolve: %w", domain.ErrUnauthorized)
		}
		return domain.SessionContext{}, uuid.Nil, fmt.Errorf("auth.Resolve: %w", err)
	}

	// The row must belong to the token's subject.
	if session.UserID != userID {
		return domain.SessionContext{}, uuid.Nil, fmt.Errorf("auth.Resolve: %w", domain.ErrUnauthorized)
	}

	sc := domain.SessionContext{
		UserID: session.UserID,
		Email:  session.Email,
		Stage:  session.Stage,
	}
	if sc.Stage == "" {
		sc.Stage = domain.DefaultStageKey
	}

	return sc, session.ID, nil
}

// SetStage switches the session's active stage after validating the key
// against the stage catalog. Unknown stage → validation error.
func (s *Service) SetStage(ctx context.Context, sessionID uuid.UUID, stageKey string) error {
	if stageKey == "" {
		return domain.NewValidationError("stage", "required")
	}

	if _, err := s.stages.GetByKey(ctx, stageKey); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("stage", "unknown stage")
		}
		return fmt.Errorf("auth.SetStage: %w", err)
	}

	if err := s.sessions.UpdateStage(ctx, sessionID, stageKey); err != nil {
		return fmt.Errorf("auth.SetStage: %w", err)
	}

	s.log.InfoContext(ctx, "session stage changed",
		slog.String("session_id", sessionID.String()),
		slog.String("stage", stageKey))

	return nil
}
