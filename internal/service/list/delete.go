package list

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// Delete removes a list with all its items and collaborations in one
// transaction. Only the owner may delete a list.
func (s *Service) Delete(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return fmt.Errorf("list.Delete: %w", err)
	}
	if l.OwnerID != userID {
		return domain.ErrForbidden
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.items.DeleteByList(ctx, listID); err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if err := s.collabs.DeleteByList(ctx, listID); err != nil {
			return fmt.Errorf("delete collaborations: %w", err)
		}
		if err := s.lists.Delete(ctx, listID); err != nil {
			return fmt.Errorf("delete list: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("list.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "list deleted", slog.String("list_id", listID.String()))
	return nil
}
