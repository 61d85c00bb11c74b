package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/service/report"
)

type reportService interface {
	Expenses(ctx context.Context, listID uuid.UUID) (*report.ExpensesReport, error)
	History(ctx context.Context, listID uuid.UUID) ([]report.HistoryEntry, error)
}

// ReportHandler serves read-only report endpoints.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type expenseItemResponse struct {
	ItemID      string        `json:"itemId"`
	Name        string        `json:"name"`
	Quantity    float64       `json:"quantity"`
	PriceLimit  *float64      `json:"priceLimit"`
	ActualPrice *float64      `json:"actualPrice"`
	Spent       float64       `json:"spent"`
	PurchasedAt *time.Time    `json:"purchasedAt"`
	PurchasedBy *userResponse `json:"purchasedBy,omitempty"`
}

type expensesResponse struct {
	ListID         string                `json:"listId"`
	TotalSpent     float64               `json:"totalSpent"`
	TotalEstimated float64               `json:"totalEstimated"`
	Savings        float64               `json:"savings"`
	ItemCount      int                   `json:"itemCount"`
	Items          []expenseItemResponse `json:"items"`
}

type historyEntryResponse struct {
	Type      string       `json:"type"`
	Item      itemResponse `json:"item"`
	Timestamp time.Time    `json:"timestamp"`
}

// Expenses handles GET /reports/expenses/{listId}.
func (h *ReportHandler) Expenses(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	rep, err := h.svc.Expenses(r.Context(), listID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := expensesResponse{
		ListID:         rep.ListID.String(),
		TotalSpent:     rep.TotalSpent,
		TotalEstimated: rep.TotalEstimated,
		Savings:        rep.Savings,
		ItemCount:      rep.ItemCount,
		Items:          make([]expenseItemResponse, 0, len(rep.Items)),
	}
	for _, it := range rep.Items {
		entry := expenseItemResponse{
			ItemID:      it.ItemID.String(),
			Name:        it.Name,
			Quantity:    it.Quantity,
			PriceLimit:  it.PriceLimit,
			ActualPrice: it.ActualPrice,
			Spent:       it.Spent,
			PurchasedAt: it.PurchasedAt,
		}
		if it.PurchasedBy != nil {
			buyer := toUserResponse(*it.PurchasedBy)
			entry.PurchasedBy = &buyer
		}
		resp.Items = append(resp.Items, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}

// History handles GET /reports/history/{listId}.
func (h *ReportHandler) History(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	entries, err := h.svc.History(r.Context(), listID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, historyEntryResponse{
			Type:      string(e.Type),
			Item:      toItemResponse(e.Item),
			Timestamp: e.Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
