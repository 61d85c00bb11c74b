package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

type notificationService interface {
	ListMine(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
}

// NotificationHandler serves the notification feed endpoints.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	out := make([]notificationResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, out)
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	note, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toNotificationResponse(*note))
}
