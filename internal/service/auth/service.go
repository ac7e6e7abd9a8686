// Package auth implements registration, login and the session boundary.
// A login issues an HS256 token whose jti keys a server-side session row;
// the row carries the caller's active stage and is what logout revokes.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/config"
	"github.com/genialcrm/genial-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// sessionRepo defines the session repository interface needed by the auth service.
type sessionRepo interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	UpdateStage(ctx context.Context, id uuid.UUID, stage string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// stageCatalog defines the stage catalog interface needed by the auth service.
type stageCatalog interface {
	GetByKey(ctx context.Context, key string) (*domain.Stage, error)
	Default(ctx context.Context) (string, error)
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateSessionToken(userID, sessionID uuid.UUID, email string) (string, error)
	ValidateSessionToken(token string) (userID, sessionID uuid.UUID, err error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	sessions sessionRepo
	stages   stageCatalog
	jwt      jwtManager
	cfg      config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	sessions sessionRepo,
	stages stageCatalog,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		sessions: sessions,
		stages:   stages,
		jwt:      jwt,
		cfg:      cfg,
	}
}
