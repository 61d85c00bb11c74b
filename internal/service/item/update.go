package item

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// Update applies a partial update to an item. Field-level permissions and the
// purchase-state side effects are decided by domain.ReconcileItemUpdate; this
// method only resolves the membership, loads the current row and persists the
// resulting change.
func (s *Service) Update(ctx context.Context, listID, itemID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.membership(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("item.Update: %w", err)
	}

	current, err := s.items.GetActive(ctx, listID, itemID)
	if err != nil {
		return nil, fmt.Errorf("item.Update: %w", err)
	}

	change, err := domain.ReconcileItemUpdate(patch, m, *current, userID, time.Now())
	if err != nil {
		return nil, err
	}

	updated, err := s.items.ApplyChange(ctx, listID, itemID, change)
	if err != nil {
		return nil, fmt.Errorf("item.Update apply: %w", err)
	}
	return updated, nil
}

// Delete soft-deletes an item. Admin only; the row survives for the
// purchase-history report.
func (s *Service) Delete(ctx context.Context, listID, itemID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	m, err := s.membership(ctx, listID, userID)
	if err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}
	if !m.IsAdmin {
		return domain.ErrForbidden
	}

	if err := s.items.SoftDelete(ctx, listID, itemID); err != nil {
		return fmt.Errorf("item.Delete: %w", err)
	}
	return nil
}
