package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/internal/service/list"
)

type listService interface {
	Create(ctx context.Context, input list.CreateInput) (*domain.List, error)
	GetMine(ctx context.Context) ([]domain.ListSummary, error)
	GetByID(ctx context.Context, listID uuid.UUID) (*domain.ListDetail, error)
	Update(ctx context.Context, listID uuid.UUID, input list.UpdateInput) (*domain.List, error)
	Delete(ctx context.Context, listID uuid.UUID) error
}

// ListHandler serves shopping-list REST endpoints.
type ListHandler struct {
	svc listService
	log *slog.Logger
}

// NewListHandler creates a ListHandler.
func NewListHandler(svc listService, logger *slog.Logger) *ListHandler {
	return &ListHandler{svc: svc, log: logger.With("handler", "list")}
}

type createListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// updateListRequest distinguishes an absent description from an explicit
// null: both arrive as nil through *string, so raw JSON is inspected.
type updateListRequest struct {
	Name        *string         `json:"name"`
	Description json.RawMessage `json:"description"`
}

// Create handles POST /lists.
func (h *ListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), list.CreateInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListResponse(*created))
}

// List handles GET /lists.
func (h *ListHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.GetMine(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]listSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toListSummaryResponse(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /lists/{id}.
func (h *ListHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	detail, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListDetailResponse(*detail))
}

// Update handles PUT /lists/{id}.
func (h *ListHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := list.UpdateInput{Name: req.Name}
	if len(req.Description) > 0 {
		if string(req.Description) == "null" {
			input.Description = domain.NullField[string]()
		} else {
			var desc string
			if err := json.Unmarshal(req.Description, &desc); err != nil {
				writeError(w, http.StatusBadRequest, "invalid description")
				return
			}
			input.Description = domain.SetField(desc)
		}
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(*updated))
}

// Delete handles DELETE /lists/{id}.
func (h *ListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
