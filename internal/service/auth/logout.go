package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Logout revokes a session. Revoking an already-absent session succeeds:
// logout is idempotent.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "session revoked",
		slog.String("session_id", sessionID.String()))

	return nil
}

// DeleteExpiredSessions removes sessions past their expiry and returns how
// many were dropped. Used by the cleanup command.
func (s *Service) DeleteExpiredSessions(ctx context.Context) (int, error) {
	n, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.DeleteExpiredSessions: %w", err)
	}

	if n > 0 {
		s.log.InfoContext(ctx, "expired sessions deleted", slog.Int("count", n))
	}

	return n, nil
}
