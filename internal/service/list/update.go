package list

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// UpdateInput holds the optional list changes. Description is tri-state:
// unset leaves it, null clears it.
type UpdateInput struct {
	Name        *string
	Description domain.Field[string]
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && !i.Description.Set {
		errs = append(errs, domain.FieldError{Field: "body", Message: "nothing to update"})
	}
	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Update changes the list's name and/or description. Admin only.
func (s *Service) Update(ctx context.Context, listID uuid.UUID, input UpdateInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, _, m, err := s.loadWithMembership(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("list.Update: %w", err)
	}
	if !m.IsAdmin {
		return nil, domain.ErrForbidden
	}

	updated, err := s.lists.Update(ctx, listID, input.Name, input.Description)
	if err != nil {
		return nil, fmt.Errorf("list.Update: %w", err)
	}
	return updated, nil
}
