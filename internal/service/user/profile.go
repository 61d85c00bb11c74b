package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// UpdateProfileInput holds the optional profile changes. A password change
// requires the current password.
type UpdateProfileInput struct {
	Name            *string
	NewPassword     *string
	CurrentPassword *string
}

// Validate validates the update input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.NewPassword == nil {
		errs = append(errs, domain.FieldError{Field: "body", Message: "nothing to update"})
	}
	if i.Name != nil {
		if *i.Name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if len(*i.Name) > 255 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.NewPassword != nil {
		if len(*i.NewPassword) < 8 {
			errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must be at least 8 characters"})
		} else if len(*i.NewPassword) > 72 {
			errs = append(errs, domain.FieldError{Field: "newPassword", Message: "too long"})
		}
		if i.CurrentPassword == nil || *i.CurrentPassword == "" {
			errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "required to change password"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfile updates the authenticated user's name and/or password.
// A password change verifies the current password first and returns
// ErrUnauthorized on mismatch.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		input.Name = &trimmed
	}

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Load the current user
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile get user: %w", err)
	}

	// Step 3: Verify current password and hash the new one
	var newHash *string
	if input.NewPassword != nil {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(*input.CurrentPassword)); err != nil {
			return nil, domain.ErrUnauthorized
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), s.cfg.PasswordHashCost)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile hash password: %w", err)
		}
		h := string(hash)
		newHash = &h
	}

	// Step 4: Persist
	updated, err := s.users.UpdateProfile(ctx, userID, input.Name, newHash)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("password_changed", newHash != nil))
	return updated, nil
}
