package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc      func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmailFunc  func(ctx context.Context, email string) (*domain.User, error)
	EmailExistsFunc func(ctx context.Context, email string) (bool, error)

	calls struct {
		Create []struct {
			User *domain.User
		}
		GetByEmail []struct {
			Email string
		}
		EmailExists []struct {
			Email string
		}
	}
	lock sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ User *domain.User }{User: user})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct{ User *domain.User } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, struct{ Email string }{Email: email})
	mock.lock.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct{ Email string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByEmail
}

func (mock *userRepoMock) EmailExists(ctx context.Context, email string) (bool, error) {
	if mock.EmailExistsFunc == nil {
		panic("userRepoMock.EmailExistsFunc: method is nil but userRepo.EmailExists was just called")
	}
	mock.lock.Lock()
	mock.calls.EmailExists = append(mock.calls.EmailExists, struct{ Email string }{Email: email})
	mock.lock.Unlock()
	return mock.EmailExistsFunc(ctx, email)
}

func (mock *userRepoMock) EmailExistsCalls() []struct{ Email string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EmailExists
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, session *domain.Session) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	UpdateStageFunc   func(ctx context.Context, id uuid.UUID, stage string) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Session *domain.Session
		}
		GetByID []struct {
			ID uuid.UUID
		}
		UpdateStage []struct {
			ID    uuid.UUID
			Stage string
		}
		Delete []struct {
			ID uuid.UUID
		}
		DeleteExpired []struct{}
	}
	lock sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Session *domain.Session }{Session: session})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct{ Session *domain.Session } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *sessionRepoMock) UpdateStage(ctx context.Context, id uuid.UUID, stage string) error {
	if mock.UpdateStageFunc == nil {
		panic("sessionRepoMock.UpdateStageFunc: method is nil but sessionRepo.UpdateStage was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStage = append(mock.calls.UpdateStage, struct {
		ID    uuid.UUID
		Stage string
	}{ID: id, Stage: stage})
	mock.lock.Unlock()
	return mock.UpdateStageFunc(ctx, id, stage)
}

func (mock *sessionRepoMock) UpdateStageCalls() []struct {
	ID    uuid.UUID
	Stage string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStage
}

func (mock *sessionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, struct{}{})
	mock.lock.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

var _ stageCatalog = &stageCatalogMock{}

type stageCatalogMock struct {
	GetByKeyFunc func(ctx context.Context, key string) (*domain.Stage, error)
	DefaultFunc  func(ctx context.Context) (string, error)

	calls struct {
		GetByKey []struct {
			Key string
		}
		Default []struct{}
	}
	lock sync.RWMutex
}

func (mock *stageCatalogMock) GetByKey(ctx context.Context, key string) (*domain.Stage, error) {
	if mock.GetByKeyFunc == nil {
		panic("stageCatalogMock.GetByKeyFunc: method is nil but stageCatalog.GetByKey was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, struct{ Key string }{Key: key})
	mock.lock.Unlock()
	return mock.GetByKeyFunc(ctx, key)
}

func (mock *stageCatalogMock) GetByKeyCalls() []struct{ Key string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByKey
}

func (mock *stageCatalogMock) Default(ctx context.Context) (string, error) {
	if mock.DefaultFunc == nil {
		panic("stageCatalogMock.DefaultFunc: method is nil but stageCatalog.Default was just called")
	}
	mock.lock.Lock()
	mock.calls.Default = append(mock.calls.Default, struct{}{})
	mock.lock.Unlock()
	return mock.DefaultFunc(ctx)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateSessionTokenFunc func(userID, sessionID uuid.UUID, email string) (string, error)
	ValidateSessionTokenFunc func(token string) (uuid.UUID, uuid.UUID, error)

	calls struct {
		GenerateSessionToken []struct {
			UserID    uuid.UUID
			SessionID uuid.UUID
			Email     string
		}
		ValidateSessionToken []struct {
			Token string
		}
	}
	lock sync.RWMutex
}

func (mock *jwtManagerMock) GenerateSessionToken(userID, sessionID uuid.UUID, email string) (string, error) {
	if mock.GenerateSessionTokenFunc == nil {
		panic("jwtManagerMock.GenerateSessionTokenFunc: method is nil but jwtManager.GenerateSessionToken was just called")
	}
	mock.lock.Lock()
	mock.calls.GenerateSessionToken = append(mock.calls.GenerateSessionToken, struct {
		UserID    uuid.UUID
		SessionID uuid.UUID
		Email     string
	}{UserID: userID, SessionID: sessionID, Email: email})
	mock.lock.Unlock()
	return mock.GenerateSessionTokenFunc(userID, sessionID, email)
}

func (mock *jwtManagerMock) GenerateSessionTokenCalls() []struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
	Email     string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GenerateSessionToken
}

func (mock *jwtManagerMock) ValidateSessionToken(token string) (uuid.UUID, uuid.UUID, error) {
	if mock.ValidateSessionTokenFunc == nil {
		panic("jwtManagerMock.ValidateSessionTokenFunc: method is nil but jwtManager.ValidateSessionToken was just called")
	}
	mock.lock.Lock()
	mock.calls.ValidateSessionToken = append(mock.calls.ValidateSessionToken, struct{ Token string }{Token: token})
	mock.lock.Unlock()
	return mock.ValidateSessionTokenFunc(token)
}
