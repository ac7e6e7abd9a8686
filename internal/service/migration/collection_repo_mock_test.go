package migration

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	GetByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByNameFunc func(ctx context.Context, name string, userID uuid.UUID, stage string) (*domain.Collection, error)
	CreateFunc    func(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, c *domain.Collection) (*domain.Collection, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetByName []struct {
			Name   string
			UserID uuid.UUID
			Stage  string
		}
		Create []struct {
			C *domain.Collection
		}
		Update []struct {
			ID uuid.UUID
			C  *domain.Collection
		}
	}
	lock sync.RWMutex
}

func (mock *collectionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	if mock.GetByIDFunc == nil {
		panic("collectionRepoMock.GetByIDFunc: method is nil but collectionRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *collectionRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *collectionRepoMock) GetByName(ctx context.Context, name string, userID uuid.UUID, stage string) (*domain.Collection, error) {
	if mock.GetByNameFunc == nil {
		panic("collectionRepoMock.GetByNameFunc: method is nil but collectionRepo.GetByName was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, struct {
		Name   string
		UserID uuid.UUID
		Stage  string
	}{Name: name, UserID: userID, Stage: stage})
	mock.lock.Unlock()
	return mock.GetByNameFunc(ctx, name, userID, stage)
}

func (mock *collectionRepoMock) GetByNameCalls() []struct {
	Name   string
	UserID uuid.UUID
	Stage  string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByName
}

func (mock *collectionRepoMock) Create(ctx context.Context, c *domain.Collection) (*domain.Collection, error) {
	if mock.CreateFunc == nil {
		panic("collectionRepoMock.CreateFunc: method is nil but collectionRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ C *domain.Collection }{C: c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *collectionRepoMock) CreateCalls() []struct{ C *domain.Collection } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *collectionRepoMock) Update(ctx context.Context, id uuid.UUID, c *domain.Collection) (*domain.Collection, error) {
	if mock.UpdateFunc == nil {
		panic("collectionRepoMock.UpdateFunc: method is nil but collectionRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID uuid.UUID
		C  *domain.Collection
	}{ID: id, C: c})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, id, c)
}

func (mock *collectionRepoMock) UpdateCalls() []struct {
	ID uuid.UUID
	C  *domain.Collection
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

var _ stageCatalog = &stageCatalogMock{}

type stageCatalogMock struct {
	GetByKeyFunc func(ctx context.Context, key string) (*domain.Stage, error)

	calls struct {
		GetByKey []struct {
			Key string
		}
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
