package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/internal/service/item"
)

type itemService interface {
	Add(ctx context.Context, listID uuid.UUID, input item.AddInput) (*domain.Item, error)
	Update(ctx context.Context, listID, itemID uuid.UUID, patch domain.ItemPatch) (*domain.Item, error)
	Delete(ctx context.Context, listID, itemID uuid.UUID) error
}

// ItemHandler serves item REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "item")}
}

type addItemRequest struct {
	Name       string   `json:"name"`
	Quantity   *float64 `json:"quantity"`
	PriceLimit *float64 `json:"priceLimit"`
	Notes      *string  `json:"notes"`
	Category   *string  `json:"category"`
	Priority   *string  `json:"priority"`
}

// Add handles POST /items/{listId}.
func (h *ItemHandler) Add(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := item.AddInput{
		Name:       req.Name,
		PriceLimit: req.PriceLimit,
		Notes:      req.Notes,
		Category:   req.Category,
	}
	// A missing quantity stays zero and fails input validation.
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		input.Priority = &p
	}

	created, err := h.svc.Add(r.Context(), listID, input)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(*created))
}

// Update handles PUT /items/{listId}/{itemId}.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	patch, err := decodeItemPatch(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.svc.Update(r.Context(), listID, itemID, patch)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(*updated))
}

// Delete handles DELETE /items/{listId}/{itemId}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), listID, itemID); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// systemItemFields are server-maintained fields. Clients that echo a full
// item back get these dropped silently rather than rejected.
var systemItemFields = map[string]struct{}{
	"id":            {},
	"listId":        {},
	"purchasedById": {},
	"purchasedBy":   {},
	"purchasedAt":   {},
	"createdAt":     {},
	"updatedAt":     {},
	"deletedAt":     {},
}

// decodeItemPatch parses an item-update body, recording tri-state presence
// for each writable field. Unrecognized field names are collected rather
// than rejected here; the update pipeline decides how to treat them.
func decodeItemPatch(r *http.Request) (domain.ItemPatch, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return domain.ItemPatch{}, fmt.Errorf("invalid request body")
	}

	var patch domain.ItemPatch
	for name, value := range raw {
		var err error
		switch name {
		case "name":
			patch.Name, err = decodeField[string](name, value)
		case "quantity":
			patch.Quantity, err = decodeField[float64](name, value)
		case "priceLimit":
			patch.PriceLimit, err = decodeField[float64](name, value)
		case "actualPrice":
			patch.ActualPrice, err = decodeField[float64](name, value)
		case "notes":
			patch.Notes, err = decodeField[string](name, value)
		case "category":
			patch.Category, err = decodeField[string](name, value)
		case "priority":
			patch.Priority, err = decodeField[domain.Priority](name, value)
		case "purchased":
			patch.Purchased, err = decodeField[bool](name, value)
		default:
			if _, ok := systemItemFields[name]; ok {
				patch.Dropped = append(patch.Dropped, name)
			} else {
				patch.Unknown = append(patch.Unknown, name)
			}
		}
		if err != nil {
			return domain.ItemPatch{}, err
		}
	}
	return patch, nil
}

func decodeField[T any](name string, value json.RawMessage) (domain.Field[T], error) {
	if string(value) == "null" {
		return domain.NullField[T](), nil
	}
	var v T
	if err := json.Unmarshal(value, &v); err != nil {
		return domain.Field[T]{}, fmt.Errorf("invalid value for field %q", name)
	}
	return domain.SetField(v), nil
}
