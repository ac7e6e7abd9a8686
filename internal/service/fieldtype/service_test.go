package fieldtype

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/genialcrm/genial-backend/internal/domain"
)

var _ fieldTypeRepo = &fieldTypeRepoMock{}

type fieldTypeRepoMock struct {
	ListFunc      func(ctx context.Context) ([]domain.FieldType, error)
	GetByTypeFunc func(ctx context.Context, typeKey string) (*domain.FieldType, error)
	CreateFunc    func(ctx context.Context, ft *domain.FieldType) (*domain.FieldType, error)
	UpdateFunc    func(ctx context.Context, id uuid.UUID, ft *domain.FieldType) (*domain.FieldType, error)
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	SeedFunc      func(ctx context.Context, types []domain.FieldType) error

	calls struct {
		Create []struct {
			FT *domain.FieldType
		}
		Seed []struct {
			Types []domain.FieldType
		}
	}
	lock sync.RWMutex
}

func (mock *fieldTypeRepoMock) List(ctx context.Context) ([]domain.FieldType, error) {
	if mock.ListFunc == nil {
		panic("fieldTypeRepoMock.ListFunc: method is nil but fieldTypeRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *fieldTypeRepoMock) GetByType(ctx context.Context, typeKey string) (*domain.FieldType, error) {
	if mock.GetByTypeFunc == nil {
		panic("fieldTypeRepoMock.GetByTypeFunc: method is nil but fieldTypeRepo.GetByType was just called")
	}
	return mock.GetByTypeFunc(ctx, typeKey)
}

func (mock *fieldTypeRepoMock) Create(ctx context.Context, ft *domain.FieldType) (*domain.FieldType, error) {
	if mock.CreateFunc == nil {
		panic("fieldTypeRepoMock.CreateFunc: method is nil but fieldTypeRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ FT *domain.FieldType }{FT: ft})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, ft)
}

func (mock *fieldTypeRepoMock) CreateCalls() []struct{ FT *domain.FieldType } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *fieldTypeRepoMock) Update(ctx context.Context, id uuid.UUID, ft *domain.FieldType) (*domain.FieldType, error) {
	if mock.UpdateFunc == nil {
		panic("fieldTypeRepoMock.UpdateFunc: method is nil but fieldTypeRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, ft)
}

func (mock *fieldTypeRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("fieldTypeRepoMock.DeleteFunc: method is nil but fieldTypeRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *fieldTypeRepoMock) Seed(ctx context.Context, types []domain.FieldType) error {
	if mock.SeedFunc == nil {
		panic("fieldTypeRepoMock.SeedFunc: method is nil but fieldTypeRepo.Seed was just called")
	}
	mock.lock.Lock()
	mock.calls.Seed = append(mock.calls.Seed, struct{ Types []domain.FieldType }{Types: types})
	mock.lock.Unlock()
	return mock.SeedFunc(ctx, types)
}

func (mock *fieldTypeRepoMock) SeedCalls() []struct{ Types []domain.FieldType } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Seed
}

func newTestService(types fieldTypeRepo) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, types)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	repo := &fieldTypeRepoMock{
		CreateFunc: func(ctx context.Context, ft *domain.FieldType) (*domain.FieldType, error) {
			return ft, nil
		},
	}
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), UpsertInput{
		Type:   "color",
		Label:  "Color",
		Icon:   "fas fa-palette",
		Order:  14,
		Active: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Type != "color" || created.Order != 14 {
		t.Errorf("created: %+v", created)
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := newTestService(&fieldTypeRepoMock{})

	tests := []struct {
		name  string
		input UpsertInput
	}{
		{"missing type", UpsertInput{Label: "Color"}},
		{"missing label", UpsertInput{Type: "color"}},
		{"negative order", UpsertInput{Type: "color", Label: "Color", Order: -1}},
	}
	for _, tt := range tests {
		if _, err := svc.Create(context.Background(), tt.input); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: expected validation error, got %v", tt.name, err)
		}
	}
}

func TestGetByType_NotFound(t *testing.T) {
	t.Parallel()

	repo := &fieldTypeRepoMock{
		GetByTypeFunc: func(ctx context.Context, typeKey string) (*domain.FieldType, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo)

	if _, err := svc.GetByType(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSeed_BuiltInCatalog(t *testing.T) {
	t.Parallel()

	repo := &fieldTypeRepoMock{
		SeedFunc: func(ctx context.Context, types []domain.FieldType) error {
			return nil
		},
	}
	svc := newTestService(repo)

	if err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seeded := repo.SeedCalls()[0].Types
	if len(seeded) != 13 {
		t.Fatalf("seeded types: got %d, want 13", len(seeded))
	}
	if seeded[0].Type != "plain-text" || seeded[12].Type != "geo-point" {
		t.Errorf("catalog boundaries: first %q, last %q", seeded[0].Type, seeded[12].Type)
	}

	byType := make(map[string]domain.FieldType, len(seeded))
	for _, ft := range seeded {
		byType[ft.Type] = ft
	}
	if ft := byType["number"]; ft.DisplayIcon == nil || *ft.DisplayIcon != "#" {
		t.Errorf("number display icon: %+v", ft.DisplayIcon)
	}
	if ft := byType["json"]; ft.DisplayIcon == nil || *ft.DisplayIcon != "{}" {
		t.Errorf("json display icon: %+v", ft.DisplayIcon)
	}
	for _, ft := range seeded {
		if !ft.Active {
			t.Errorf("%s seeded inactive", ft.Type)
		}
	}
}
