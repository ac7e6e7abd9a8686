package record

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

var _ collectionRepo = &collectionRepoMock{}

type collectionRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Collection, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
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

var _ documentStore = &documentStoreMock{}

type documentStoreMock struct {
	InsertFunc  func(ctx context.Context, storeName string, doc *domain.Document) error
	FindAllFunc func(ctx context.Context, storeName string) ([]map[string]any, error)

	calls struct {
		Insert []struct {
			StoreName string
			Doc       *domain.Document
		}
		FindAll []struct {
			StoreName string
		}
	}
	lock sync.RWMutex
}

func (mock *documentStoreMock) Insert(ctx context.Context, storeName string, doc *domain.Document) error {
	if mock.InsertFunc == nil {
		panic("documentStoreMock.InsertFunc: method is nil but documentStore.Insert was just called")
	}
	mock.lock.Lock()
	mock.calls.Insert = append(mock.calls.Insert, struct {
		StoreName string
		Doc       *domain.Document
	}{StoreName: storeName, Doc: doc})
	mock.lock.Unlock()
	return mock.InsertFunc(ctx, storeName, doc)
}

func (mock *documentStoreMock) InsertCalls() []struct {
	StoreName string
	Doc       *domain.Document
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Insert
}

func (mock *documentStoreMock) FindAll(ctx context.Context, storeName string) ([]map[string]any, error) {
	if mock.FindAllFunc == nil {
		panic("documentStoreMock.FindAllFunc: method is nil but documentStore.FindAll was just called")
	}
	mock.lock.Lock()
	mock.calls.FindAll = append(mock.calls.FindAll, struct{ StoreName string }{StoreName: storeName})
	mock.lock.Unlock()
	return mock.FindAllFunc(ctx, storeName)
}

func (mock *documentStoreMock) FindAllCalls() []struct{ StoreName string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.FindAll
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

// defaultTxMock runs the callback directly without a transaction.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
