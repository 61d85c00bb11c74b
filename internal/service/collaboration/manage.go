package collaboration

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// Remove deletes a collaboration from a list. Admin only; removing the last
// admin-role collaboration is rejected with ErrConflict. The removed user
// gets a COLLABORATION_REMOVED notification unless they removed themselves.
func (s *Service) Remove(ctx context.Context, listID, collabID uuid.UUID) error {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	list, target, collabs, err := s.loadTarget(ctx, listID, collabID)
	if err != nil {
		return fmt.Errorf("collaboration.Remove: %w", err)
	}

	m := domain.ResolveMembership(callerID, list.OwnerID, collabs)
	if err := domain.CheckRemove(m, *target, collabs); err != nil {
		return err
	}

	if err := s.collabs.Delete(ctx, collabID); err != nil {
		return fmt.Errorf("collaboration.Remove delete: %w", err)
	}

	if target.UserID != callerID {
		s.notify(ctx, target.UserID, domain.NotificationCollaborationRemoved,
			"Removed from list",
			fmt.Sprintf("You were removed from the list %q", list.Name),
			domain.NotificationMetadata{ListID: &list.ID, ListName: &list.Name})
	}

	s.log.InfoContext(ctx, "collaborator removed",
		slog.String("list_id", listID.String()),
		slog.String("user_id", target.UserID.String()))
	return nil
}

// UpdateRole changes a collaboration's role. Owner only; demoting the sole
// non-owner admin is rejected with ErrConflict. The affected user gets a
// ROLE_UPDATED notification.
func (s *Service) UpdateRole(ctx context.Context, listID, collabID uuid.UUID, role domain.Role) (*domain.Collaboration, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, target, collabs, err := s.loadTarget(ctx, listID, collabID)
	if err != nil {
		return nil, fmt.Errorf("collaboration.UpdateRole: %w", err)
	}

	if err := domain.CheckRoleChange(callerID, list.OwnerID, *target, collabs, role); err != nil {
		return nil, err
	}

	updated, err := s.collabs.UpdateRole(ctx, collabID, role)
	if err != nil {
		return nil, fmt.Errorf("collaboration.UpdateRole update: %w", err)
	}

	s.notify(ctx, target.UserID, domain.NotificationRoleUpdated,
		"Your role changed",
		fmt.Sprintf("Your role on the list %q is now %s", list.Name, role),
		domain.NotificationMetadata{ListID: &list.ID, ListName: &list.Name, NewRole: &role})

	s.log.InfoContext(ctx, "collaborator role updated",
		slog.String("list_id", listID.String()),
		slog.String("user_id", target.UserID.String()),
		slog.String("role", role.String()))
	return updated, nil
}

// loadTarget fetches the list, the target collaboration and the full
// collaboration set, verifying the target belongs to the list.
func (s *Service) loadTarget(ctx context.Context, listID, collabID uuid.UUID) (*domain.List, *domain.Collaboration, []domain.Collaboration, error) {
	list, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, nil, nil, err
	}

	target, err := s.collabs.GetByID(ctx, collabID)
	if err != nil {
		return nil, nil, nil, err
	}
	if target.ListID != listID {
		return nil, nil, nil, domain.ErrNotFound
	}

	collabs, err := s.collabs.ListByList(ctx, listID)
	if err != nil {
		return nil, nil, nil, err
	}
	return list, target, collabs, nil
}
