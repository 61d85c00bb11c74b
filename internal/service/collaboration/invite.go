package collaboration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// InviteInput holds parameters for inviting a user to a list by email.
type InviteInput struct {
	Email string
	Role  *domain.Role
}

// Invite adds the user identified by email to the list. Admin only.
// The default role is collaborator. The invitee gets a LIST_SHARED
// notification.
func (s *Service) Invite(ctx context.Context, listID uuid.UUID, input InviteInput) (*domain.Collaboration, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" {
		return nil, domain.NewValidationError("invitedEmail", "required")
	}

	role := domain.RoleCollaborator
	if input.Role != nil {
		role = *input.Role
	}

	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("collaboration.Invite get list: %w", err)
	}

	invitee, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", input.Email, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("collaboration.Invite get invitee: %w", err)
	}

	collabs, err := s.collabs.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("collaboration.Invite list collaborations: %w", err)
	}

	m := domain.ResolveMembership(callerID, list.OwnerID, collabs)
	if err := domain.CheckInvite(m, list.OwnerID, invitee.ID, collabs, role); err != nil {
		return nil, err
	}

	created, err := s.collabs.Create(ctx, &domain.Collaboration{
		ID:        uuid.New(),
		ListID:    listID,
		UserID:    invitee.ID,
		Role:      role,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("collaboration.Invite create: %w", err)
	}
	created.User = invitee

	inviter, err := s.users.GetByID(ctx, callerID)
	inviterName := ""
	if err == nil {
		inviterName = inviter.Name
	}
	s.notify(ctx, invitee.ID, domain.NotificationListShared,
		"List shared with you",
		fmt.Sprintf("%s shared the list %q with you", inviterName, list.Name),
		domain.NotificationMetadata{
			ListID:      &list.ID,
			ListName:    &list.Name,
			InviterName: &inviterName,
		})

	s.log.InfoContext(ctx, "collaborator invited",
		slog.String("list_id", listID.String()),
		slog.String("invitee_id", invitee.ID.String()),
		slog.String("role", role.String()))
	return created, nil
}
