package item

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg item . itemRepo listRepo collabRepo

var (
	_ itemRepo   = &itemRepoMock{}
	_ listRepo   = &listRepoMock{}
	_ collabRepo = &collabRepoMock{}
)

type itemRepoMock struct {
	CreateFunc      func(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetActiveFunc   func(ctx context.Context, listID, itemID uuid.UUID) (*domain.Item, error)
	ApplyChangeFunc func(ctx context.Context, listID, itemID uuid.UUID, ch domain.ItemChange) (*domain.Item, error)
	SoftDeleteFunc  func(ctx context.Context, listID, itemID uuid.UUID) error

	calls struct {
		Create      []struct{ Item *domain.Item }
		ApplyChange []struct {
			ListID uuid.UUID
			ItemID uuid.UUID
			Change domain.ItemChange
		}
		SoftDelete []struct {
			ListID uuid.UUID
			ItemID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Item *domain.Item }{it})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, it)
}

func (mock *itemRepoMock) CreateCalls() []struct{ Item *domain.Item } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *itemRepoMock) GetActive(ctx context.Context, listID, itemID uuid.UUID) (*domain.Item, error) {
	if mock.GetActiveFunc == nil {
		panic("itemRepoMock.GetActiveFunc: method is nil but itemRepo.GetActive was just called")
	}
	return mock.GetActiveFunc(ctx, listID, itemID)
}

func (mock *itemRepoMock) ApplyChange(ctx context.Context, listID, itemID uuid.UUID, ch domain.ItemChange) (*domain.Item, error) {
	if mock.ApplyChangeFunc == nil {
		panic("itemRepoMock.ApplyChangeFunc: method is nil but itemRepo.ApplyChange was just called")
	}
	mock.lock.Lock()
	mock.calls.ApplyChange = append(mock.calls.ApplyChange, struct {
		ListID uuid.UUID
		ItemID uuid.UUID
		Change domain.ItemChange
	}{listID, itemID, ch})
	mock.lock.Unlock()
	return mock.ApplyChangeFunc(ctx, listID, itemID, ch)
}

func (mock *itemRepoMock) ApplyChangeCalls() []struct {
	ListID uuid.UUID
	ItemID uuid.UUID
	Change domain.ItemChange
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ApplyChange
}

func (mock *itemRepoMock) SoftDelete(ctx context.Context, listID, itemID uuid.UUID) error {
	if mock.SoftDeleteFunc == nil {
		panic("itemRepoMock.SoftDeleteFunc: method is nil but itemRepo.SoftDelete was just called")
	}
	mock.lock.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, struct {
		ListID uuid.UUID
		ItemID uuid.UUID
	}{listID, itemID})
	mock.lock.Unlock()
	return mock.SoftDeleteFunc(ctx, listID, itemID)
}

func (mock *itemRepoMock) SoftDeleteCalls() []struct {
	ListID uuid.UUID
	ItemID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SoftDelete
}

type listRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

func (mock *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

type collabRepoMock struct {
	ListByListFunc func(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
}

func (mock *collabRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error) {
	if mock.ListByListFunc == nil {
		panic("collabRepoMock.ListByListFunc: method is nil but collabRepo.ListByList was just called")
	}
	return mock.ListByListFunc(ctx, listID)
}
