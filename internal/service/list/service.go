// Package list implements shopping list management: creation, the member's
// overview, the single-list view, updates and deletion.
package list

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

// listRepo defines the list repository interface needed by list service.
type listRepo interface {
	Create(ctx context.Context, l *domain.List) (*domain.List, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
	ListByMember(ctx context.Context, userID uuid.UUID) ([]domain.ListSummary, error)
	Update(ctx context.Context, id uuid.UUID, name *string, description domain.Field[string]) (*domain.List, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// collabRepo defines the collaboration repository interface needed by list service.
type collabRepo interface {
	Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
	ListByLists(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][]domain.Collaboration, error)
	DeleteByList(ctx context.Context, listID uuid.UUID) error
}

// itemRepo defines the item repository interface needed by list service.
type itemRepo interface {
	ListActive(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
	DeleteByList(ctx context.Context, listID uuid.UUID) error
}

// userRepo defines the user repository interface needed by list service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by list service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements list operations.
type Service struct {
	log     *slog.Logger
	lists   listRepo
	collabs collabRepo
	items   itemRepo
	users   userRepo
	tx      txManager
}

// NewService creates a new list service instance.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	collabs collabRepo,
	items itemRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:     logger.With("service", "list"),
		lists:   lists,
		collabs: collabs,
		items:   items,
		users:   users,
		tx:      tx,
	}
}

// loadWithMembership fetches a list with its collaborations and resolves the
// caller's membership in one step, since almost every operation needs all three.
func (s *Service) loadWithMembership(ctx context.Context, listID, userID uuid.UUID) (*domain.List, []domain.Collaboration, domain.Membership, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, domain.Membership{}, err
	}

	collabs, err := s.collabs.ListByList(ctx, listID)
	if err != nil {
		return nil, nil, domain.Membership{}, err
	}

	return l, collabs, domain.ResolveMembership(userID, l.OwnerID, collabs), nil
}
