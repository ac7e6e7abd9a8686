package schema

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Collection) (*domain.Collection, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, c *domain.Collection) (*domain.Collection, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	GetByNameFunc  func(ctx context.Context, name string, userID uuid.UUID, stage string) (*domain.Collection, error)
	NameTakenFunc  func(ctx context.Context, name string, userID uuid.UUID, stage string, excludeID uuid.UUID) (bool, error)
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, stage string) ([]*domain.Collection, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			C *domain.Collection
		}
		Update []struct {
			ID uuid.UUID
			C  *domain.Collection
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetByName []struct {
			Name   string
			UserID uuid.UUID
			Stage  string
		}
		NameTaken []struct {
			Name      string
			UserID    uuid.UUID
			Stage     string
			ExcludeID uuid.UUID
		}
		ListByUser []struct {
			UserID uuid.UUID
			Stage  string
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
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

func (mock *collectionRepoMock) NameTaken(ctx context.Context, name string, userID uuid.UUID, stage string, excludeID uuid.UUID) (bool, error) {
	if mock.NameTakenFunc == nil {
		panic("collectionRepoMock.NameTakenFunc: method is nil but collectionRepo.NameTaken was just called")
	}
	mock.lock.Lock()
	mock.calls.NameTaken = append(mock.calls.NameTaken, struct {
		Name      string
		UserID    uuid.UUID
		Stage     string
		ExcludeID uuid.UUID
	}{Name: name, UserID: userID, Stage: stage, ExcludeID: excludeID})
	mock.lock.Unlock()
	return mock.NameTakenFunc(ctx, name, userID, stage, excludeID)
}

func (mock *collectionRepoMock) NameTakenCalls() []struct {
	Name      string
	UserID    uuid.UUID
	Stage     string
	ExcludeID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.NameTaken
}

func (mock *collectionRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, stage string) ([]*domain.Collection, error) {
	if mock.ListByUserFunc == nil {
		panic("collectionRepoMock.ListByUserFunc: method is nil but collectionRepo.ListByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, struct {
		UserID uuid.UUID
		Stage  string
	}{UserID: userID, Stage: stage})
	mock.lock.Unlock()
	return mock.ListByUserFunc(ctx, userID, stage)
}

func (mock *collectionRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
	Stage  string
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListByUser
}

func (mock *collectionRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("collectionRepoMock.DeleteFunc: method is nil but collectionRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *collectionRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ recordStore = &recordStoreMock{}

type recordStoreMock struct {
	DropFunc func(ctx context.Context, storeName string) error

	calls struct {
		Drop []struct {
			StoreName string
		}
	}
	lock sync.RWMutex
}

func (mock *recordStoreMock) Drop(ctx context.Context, storeName string) error {
	if mock.DropFunc == nil {
		panic("recordStoreMock.DropFunc: method is nil but recordStore.Drop was just called")
	}
	mock.lock.Lock()
	mock.calls.Drop = append(mock.calls.Drop, struct{ StoreName string }{StoreName: storeName})
	mock.lock.Unlock()
	return mock.DropFunc(ctx, storeName)
}

func (mock *recordStoreMock) DropCalls() []struct{ StoreName string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Drop
}
