package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

// CreateInput holds parameters for list creation.
type CreateInput struct {
	Name        string
	Description *string
}

// Validate validates the creation input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create makes a new list owned by the authenticated user. The owner's admin
// collaboration row is written in the same transaction as the list itself.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.List, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	var created *domain.List

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.lists.Create(ctx, &domain.List{
			ID:          uuid.New(),
			Name:        input.Name,
			Description: input.Description,
			OwnerID:     userID,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create list: %w", err)
		}

		_, err = s.collabs.Create(ctx, &domain.Collaboration{
			ID:        uuid.New(),
			ListID:    created.ID,
			UserID:    userID,
			Role:      domain.RoleAdmin,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create owner collaboration: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list.Create: %w", err)
	}

	s.log.InfoContext(ctx, "list created",
		slog.String("list_id", created.ID.String()),
		slog.String("owner_id", userID.String()))
	return created, nil
}
