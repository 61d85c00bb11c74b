package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// ExpenseItem is one purchased item's contribution to the expense report.
type ExpenseItem struct {
	ItemID      uuid.UUID
	Name        string
	Quantity    float64
	PriceLimit  *float64
	ActualPrice *float64
	Spent       float64
	PurchasedAt *time.Time
	PurchasedBy *domain.User
}

// ExpensesReport summarizes spending on a list's purchased items.
type ExpensesReport struct {
	ListID uuid.UUID

	// TotalSpent sums actual prices; items without one fall back to the
	// price limit. Items with neither contribute nothing.
	TotalSpent float64
	// TotalEstimated sums price limits over purchased items that have one.
	TotalEstimated float64
	// Savings sums (priceLimit - actualPrice) x quantity over items where
	// both prices are known. Negative when purchases ran over budget.
	Savings float64

	ItemCount int
	Items     []ExpenseItem
}

// Expenses builds the expense report over the list's purchased, non-deleted
// items. Any member may read it.
func (s *Service) Expenses(ctx context.Context, listID uuid.UUID) (*ExpensesReport, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkAccess(ctx, listID, userID); err != nil {
		return nil, fmt.Errorf("report.Expenses: %w", err)
	}

	purchased, err := s.items.ListPurchased(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("report.Expenses load items: %w", err)
	}

	report := &ExpensesReport{
		ListID:    listID,
		ItemCount: len(purchased),
		Items:     make([]ExpenseItem, 0, len(purchased)),
	}
	for _, it := range purchased {
		entry := ExpenseItem{
			ItemID:      it.ID,
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceLimit:  it.PriceLimit,
			ActualPrice: it.ActualPrice,
			PurchasedAt: it.PurchasedAt,
			PurchasedBy: it.PurchasedBy,
		}

		switch {
		case it.ActualPrice != nil:
			entry.Spent = *it.ActualPrice * it.Quantity
		case it.PriceLimit != nil:
			entry.Spent = *it.PriceLimit * it.Quantity
		}
		report.TotalSpent += entry.Spent

		if it.PriceLimit != nil {
			report.TotalEstimated += *it.PriceLimit * it.Quantity
		}
		if it.PriceLimit != nil && it.ActualPrice != nil {
			report.Savings += (*it.PriceLimit - *it.ActualPrice) * it.Quantity
		}

		report.Items = append(report.Items, entry)
	}
	return report, nil
}
