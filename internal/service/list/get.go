package list

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// GetMine returns summaries of every list the authenticated user owns or
// collaborates on, with collaborator profiles and the user's role attached.
func (s *Service) GetMine(ctx context.Context) ([]domain.ListSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	summaries, err := s.lists.ListByMember(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list.GetMine: %w", err)
	}
	if len(summaries) == 0 {
		return []domain.ListSummary{}, nil
	}

	ids := make([]uuid.UUID, len(summaries))
	for i, sum := range summaries {
		ids[i] = sum.ID
	}
	collabsByList, err := s.collabs.ListByLists(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list.GetMine load collaborations: %w", err)
	}

	for i := range summaries {
		collabs := collabsByList[summaries[i].ID]
		summaries[i].Collaborations = collabs
		summaries[i].UserRole = domain.ResolveMembership(userID, summaries[i].OwnerID, collabs).Role()
	}
	return summaries, nil
}

// GetByID returns the full single-list view: the list, its owner, active
// items, collaborations and the caller's role.
// Returns ErrForbidden when the caller is not a member.
func (s *Service) GetByID(ctx context.Context, listID uuid.UUID) (*domain.ListDetail, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, collabs, m, err := s.loadWithMembership(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("list.GetByID: %w", err)
	}
	if !m.HasAccess() {
		return nil, domain.ErrForbidden
	}

	owner, err := s.users.GetByID(ctx, l.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("list.GetByID load owner: %w", err)
	}

	items, err := s.items.ListActive(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list.GetByID load items: %w", err)
	}

	return &domain.ListDetail{
		List:           *l,
		Owner:          *owner,
		Collaborations: collabs,
		Items:          items,
		UserRole:       m.Role(),
	}, nil
}
