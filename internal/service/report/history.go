package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// HistoryEntryType tags what happened to an item in the history feed.
type HistoryEntryType string

const (
	HistoryPurchased HistoryEntryType = "PURCHASED"
	HistoryDeleted   HistoryEntryType = "DELETED"
)

// HistoryEntry is one event in a list's activity history.
type HistoryEntry struct {
	Type      HistoryEntryType
	Item      domain.Item
	Timestamp time.Time
}

// History returns the list's activity feed: purchased items and soft-deleted
// items, most recent first. An item that was purchased and later deleted
// appears once, as a purchase. Any member may read it.
func (s *Service) History(ctx context.Context, listID uuid.UUID) ([]HistoryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkAccess(ctx, listID, userID); err != nil {
		return nil, fmt.Errorf("report.History: %w", err)
	}

	items, err := s.items.ListHistory(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("report.History load items: %w", err)
	}

	// One entry per item, in the repository's ordering. A purchase outranks
	// a later soft delete.
	entries := make([]HistoryEntry, 0, len(items))
	for _, it := range items {
		switch {
		case it.Purchased && it.PurchasedAt != nil:
			entries = append(entries, HistoryEntry{
				Type:      HistoryPurchased,
				Item:      it,
				Timestamp: *it.PurchasedAt,
			})
		case it.DeletedAt != nil:
			entries = append(entries, HistoryEntry{
				Type:      HistoryDeleted,
				Item:      it,
				Timestamp: *it.DeletedAt,
			})
		}
	}
	return entries, nil
}
