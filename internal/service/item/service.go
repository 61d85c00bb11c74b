// Package item implements item management inside a list: adding, the
// permission-aware partial update, and soft deletion.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

// itemRepo defines the item repository interface needed by item service.
type itemRepo interface {
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetActive(ctx context.Context, listID, itemID uuid.UUID) (*domain.Item, error)
	ApplyChange(ctx context.Context, listID, itemID uuid.UUID, ch domain.ItemChange) (*domain.Item, error)
	SoftDelete(ctx context.Context, listID, itemID uuid.UUID) error
}

// listRepo defines the list repository interface needed by item service.
type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

// collabRepo defines the collaboration repository interface needed by item service.
type collabRepo interface {
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
}

// Service implements item operations.
type Service struct {
	log     *slog.Logger
	items   itemRepo
	lists   listRepo
	collabs collabRepo
}

// NewService creates a new item service instance.
func NewService(logger *slog.Logger, items itemRepo, lists listRepo, collabs collabRepo) *Service {
	return &Service{
		log:     logger.With("service", "item"),
		items:   items,
		lists:   lists,
		collabs: collabs,
	}
}

// membership resolves the caller's standing on the list.
func (s *Service) membership(ctx context.Context, listID, userID uuid.UUID) (domain.Membership, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return domain.Membership{}, err
	}
	collabs, err := s.collabs.ListByList(ctx, listID)
	if err != nil {
		return domain.Membership{}, err
	}
	return domain.ResolveMembership(userID, l.OwnerID, collabs), nil
}
