package list

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg list . listRepo collabRepo itemRepo userRepo txManager

var (
	_ listRepo   = &listRepoMock{}
	_ collabRepo = &collabRepoMock{}
	_ itemRepo   = &itemRepoMock{}
	_ userRepo   = &userRepoMock{}
	_ txManager  = &txManagerMock{}
)

type listRepoMock struct {
	CreateFunc       func(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.List, error)
	ListByMemberFunc func(ctx context.Context, userID uuid.UUID) ([]domain.ListSummary, error)
	UpdateFunc       func(ctx context.Context, id uuid.UUID, name *string, description domain.Field[string]) (*domain.List, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct{ List *domain.List }
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *listRepoMock) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	if mock.CreateFunc == nil {
		panic("listRepoMock.CreateFunc: method is nil but listRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ List *domain.List }{l})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *listRepoMock) CreateCalls() []struct{ List *domain.List } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *listRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	if mock.GetByIDFunc == nil {
		panic("listRepoMock.GetByIDFunc: method is nil but listRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *listRepoMock) ListByMember(ctx context.Context, userID uuid.UUID) ([]domain.ListSummary, error) {
	if mock.ListByMemberFunc == nil {
		panic("listRepoMock.ListByMemberFunc: method is nil but listRepo.ListByMember was just called")
	}
	return mock.ListByMemberFunc(ctx, userID)
}

func (mock *listRepoMock) Update(ctx context.Context, id uuid.UUID, name *string, description domain.Field[string]) (*domain.List, error) {
	if mock.UpdateFunc == nil {
		panic("listRepoMock.UpdateFunc: method is nil but listRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, name, description)
}

func (mock *listRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("listRepoMock.DeleteFunc: method is nil but listRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *listRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

type collabRepoMock struct {
	CreateFunc       func(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error)
	ListByListFunc   func(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
	ListByListsFunc  func(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][]domain.Collaboration, error)
	DeleteByListFunc func(ctx context.Context, listID uuid.UUID) error

	calls struct {
		Create       []struct{ Collab *domain.Collaboration }
		DeleteByList []struct{ ListID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *collabRepoMock) Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
	if mock.CreateFunc == nil {
		panic("collabRepoMock.CreateFunc: method is nil but collabRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Collab *domain.Collaboration }{c})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *collabRepoMock) CreateCalls() []struct{ Collab *domain.Collaboration } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *collabRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error) {
	if mock.ListByListFunc == nil {
		panic("collabRepoMock.ListByListFunc: method is nil but collabRepo.ListByList was just called")
	}
	return mock.ListByListFunc(ctx, listID)
}

func (mock *collabRepoMock) ListByLists(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][]domain.Collaboration, error) {
	if mock.ListByListsFunc == nil {
		panic("collabRepoMock.ListByListsFunc: method is nil but collabRepo.ListByLists was just called")
	}
	return mock.ListByListsFunc(ctx, listIDs)
}

func (mock *collabRepoMock) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	if mock.DeleteByListFunc == nil {
		panic("collabRepoMock.DeleteByListFunc: method is nil but collabRepo.DeleteByList was just called")
	}
	mock.lock.Lock()
	mock.calls.DeleteByList = append(mock.calls.DeleteByList, struct{ ListID uuid.UUID }{listID})
	mock.lock.Unlock()
	return mock.DeleteByListFunc(ctx, listID)
}

type itemRepoMock struct {
	ListActiveFunc   func(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
	DeleteByListFunc func(ctx context.Context, listID uuid.UUID) error
}

func (mock *itemRepoMock) ListActive(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	if mock.ListActiveFunc == nil {
		panic("itemRepoMock.ListActiveFunc: method is nil but itemRepo.ListActive was just called")
	}
	return mock.ListActiveFunc(ctx, listID)
}

func (mock *itemRepoMock) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	if mock.DeleteByListFunc == nil {
		panic("itemRepoMock.DeleteByListFunc: method is nil but itemRepo.DeleteByList was just called")
	}
	return mock.DeleteByListFunc(ctx, listID)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
