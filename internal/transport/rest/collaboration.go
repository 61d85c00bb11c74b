package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/internal/service/collaboration"
)

type collaborationService interface {
	Invite(ctx context.Context, listID uuid.UUID, input collaboration.InviteInput) (*domain.Collaboration, error)
	Remove(ctx context.Context, listID, collabID uuid.UUID) error
	UpdateRole(ctx context.Context, listID, collabID uuid.UUID, role domain.Role) (*domain.Collaboration, error)
}

// CollaborationHandler serves list-sharing REST endpoints.
type CollaborationHandler struct {
	svc collaborationService
	log *slog.Logger
}

// NewCollaborationHandler creates a CollaborationHandler.
func NewCollaborationHandler(svc collaborationService, logger *slog.Logger) *CollaborationHandler {
	return &CollaborationHandler{svc: svc, log: logger.With("handler", "collaboration")}
}

type inviteRequest struct {
	Email string  `json:"email"`
	Role  *string `json:"role"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// Invite handles POST /collaborations/{listId}/invite.
func (h *CollaborationHandler) Invite(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}

	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := collaboration.InviteInput{Email: req.Email}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		input.Role = &role
	}

	created, err := h.svc.Invite(r.Context(), listID, input)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCollaborationResponse(*created))
}

// Remove handles DELETE /collaborations/{listId}/collaborators/{id}.
func (h *CollaborationHandler) Remove(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}
	collabID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), listID, collabID); err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateRole handles PUT /collaborations/{listId}/collaborators/{id}/role.
func (h *CollaborationHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "listId")
	if !ok {
		return
	}
	collabID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.UpdateRole(r.Context(), listID, collabID, domain.Role(req.Role))
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCollaborationResponse(*updated))
}
