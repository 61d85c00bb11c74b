// Package collaboration implements sharing lists with other users: inviting,
// removing and changing collaborator roles. Mutations emit notifications for
// the affected user; a notification failure never fails the operation.
package collaboration

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

// collabRepo defines the collaboration repository interface needed by this service.
type collabRepo interface {
	Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Collaboration, error)
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Collaboration, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// listRepo defines the list repository interface needed by this service.
type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error)
}

// userRepo defines the user repository interface needed by this service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// notificationRepo defines the notification repository interface needed by this service.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// Service implements collaboration operations.
type Service struct {
	log           *slog.Logger
	collabs       collabRepo
	lists         listRepo
	users         userRepo
	notifications notificationRepo
}

// NewService creates a new collaboration service instance.
func NewService(
	logger *slog.Logger,
	collabs collabRepo,
	lists listRepo,
	users userRepo,
	notifications notificationRepo,
) *Service {
	return &Service{
		log:           logger.With("service", "collaboration"),
		collabs:       collabs,
		lists:         lists,
		users:         users,
		notifications: notifications,
	}
}

// notify stores a notification for the recipient. Failures are logged and
// swallowed: sharing must not break because the feed write failed.
func (s *Service) notify(ctx context.Context, recipientID uuid.UUID, typ domain.NotificationType, title, message string, meta domain.NotificationMetadata) {
	payload, err := json.Marshal(meta)
	if err != nil {
		s.log.ErrorContext(ctx, "marshal notification metadata", slog.String("error", err.Error()))
		return
	}

	_, err = s.notifications.Create(ctx, &domain.Notification{
		ID:        uuid.New(),
		UserID:    recipientID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Metadata:  payload,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "create notification failed",
			slog.String("type", string(typ)),
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
	}
}
