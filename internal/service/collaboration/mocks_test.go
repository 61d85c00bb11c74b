package collaboration

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg collaboration . collabRepo listRepo userRepo notificationRepo

var (
	_ collabRepo       = &collabRepoMock{}
	_ listRepo         = &listRepoMock{}
	_ userRepo         = &userRepoMock{}
	_ notificationRepo = &notificationRepoMock{}
)

type collabRepoMock struct {
	CreateFunc     func(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error)
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Collaboration, error)
	ListByListFunc func(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
	UpdateRoleFunc func(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Collaboration, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct{ Collab *domain.Collaboration }
		Delete []struct{ ID uuid.UUID }
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

func (mock *collabRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collaboration, error) {
	if mock.GetByIDFunc == nil {
		panic("collabRepoMock.GetByIDFunc: method is nil but collabRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *collabRepoMock) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error) {
	if mock.ListByListFunc == nil {
		panic("collabRepoMock.ListByListFunc: method is nil but collabRepo.ListByList was just called")
	}
	return mock.ListByListFunc(ctx, listID)
}

func (mock *collabRepoMock) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Collaboration, error) {
	if mock.UpdateRoleFunc == nil {
		panic("collabRepoMock.UpdateRoleFunc: method is nil but collabRepo.UpdateRole was just called")
	}
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *collabRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("collabRepoMock.DeleteFunc: method is nil but collabRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *collabRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
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

type userRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	return mock.GetByEmailFunc(ctx, email)
}

type notificationRepoMock struct {
	CreateFunc func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)

	calls struct {
		Create []struct{ Notification *domain.Notification }
	}
	lock sync.RWMutex
}

func (mock *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if mock.CreateFunc == nil {
		panic("notificationRepoMock.CreateFunc: method is nil but notificationRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Notification *domain.Notification }{n})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, n)
}

func (mock *notificationRepoMock) CreateCalls() []struct{ Notification *domain.Notification } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}
