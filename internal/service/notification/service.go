// Package notification implements the authenticated user's notification feed.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// notificationRepo defines the repository interface needed by this service.
type notificationRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error)
}

// Service implements notification feed operations.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, notifications notificationRepo) *Service {
	return &Service{
		log:           logger.With("service", "notification"),
		notifications: notifications,
	}
}

// ListMine returns the authenticated user's notifications, newest first.
func (s *Service) ListMine(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.notifications.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("notification.ListMine: %w", err)
	}
	if notes == nil {
		notes = []domain.Notification{}
	}
	return notes, nil
}

// MarkRead flags one of the user's notifications as read. Returns ErrNotFound
// when the notification does not exist or belongs to someone else.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	note, err := s.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("notification.MarkRead: %w", err)
	}
	return note, nil
}
