package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/genialcrm/genial-backend/internal/domain"
)

// Login authenticates an email + password pair and opens a session.
// Wrong email and wrong password are indistinguishable: both return
// ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login open session: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()),
		slog.String("stage", result.Session.Stage))

	return result, nil
}

// openSession creates a session row starting in the default stage and
// issues the token referencing it.
func (s *Service) openSession(ctx context.Context, user *domain.User) (*AuthResult, error) {
	stage, err := s.stages.Default(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve default stage: %w", err)
	}

	session := &domain.Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		Stage:     stage,
		ExpiresAt: time.Now().UTC().Add(s.cfg.SessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, session.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	return &AuthResult{
		Token:   token,
		Session: session,
		User:    user,
	}, nil
}
