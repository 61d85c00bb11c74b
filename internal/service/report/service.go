// Package report implements read-only list analytics: the expense summary
// over purchased items and the activity history.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

// itemRepo defines the item repository interface needed by report service.
type itemRepo interface {
	ListPurchased(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
	ListHistory(ctx context.Context, listID uuid.UUID) ([]domain.Item, error)
}

// listRepo defines the list repository interface needed by report service.
type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

// collabRepo defines the collaboration repository interface needed by report service.
type collabRepo interface {
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
}

// Service implements report operations.
type Service struct {
	log     *slog.Logger
	items   itemRepo
	lists   listRepo
	collabs collabRepo
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, items itemRepo, lists listRepo, collabs collabRepo) *Service {
	return &Service{
		log:     logger.With("service", "report"),
		items:   items,
		lists:   lists,
		collabs: collabs,
	}
}

// checkAccess verifies the caller is a member of the list.
func (s *Service) checkAccess(ctx context.Context, listID, userID uuid.UUID) error {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	collabs, err := s.collabs.ListByList(ctx, listID)
	if err != nil {
		return err
	}
	if !domain.ResolveMembership(userID, l.OwnerID, collabs).HasAccess() {
		return domain.ErrForbidden
	}
	return nil
}
