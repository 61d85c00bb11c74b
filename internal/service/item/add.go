package item

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

// AddInput holds parameters for adding an item to a list.
type AddInput struct {
	Name       string
	Quantity   float64
	PriceLimit *float64
	Notes      *string
	Category   *string
	Priority   *domain.Priority
}

// Validate validates the add input.
func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 255 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if i.Quantity <= 0 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be a positive number"})
	}
	if i.PriceLimit != nil && *i.PriceLimit < 0 {
		errs = append(errs, domain.FieldError{Field: "priceLimit", Message: "must be a non-negative number"})
	}
	if i.Priority != nil && !i.Priority.Valid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be one of LOW, MEDIUM, HIGH, URGENT"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Add creates a new pending item in the list. Admin only; the priority
// defaults to MEDIUM when not supplied.
func (s *Service) Add(ctx context.Context, listID uuid.UUID, input AddInput) (*domain.Item, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.membership(ctx, listID, userID)
	if err != nil {
		return nil, fmt.Errorf("item.Add: %w", err)
	}
	if !m.IsAdmin {
		return nil, domain.ErrForbidden
	}

	priority := domain.PriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	now := time.Now()
	created, err := s.items.Create(ctx, &domain.Item{
		ID:         uuid.New(),
		ListID:     listID,
		Name:       input.Name,
		Quantity:   input.Quantity,
		PriceLimit: input.PriceLimit,
		Notes:      input.Notes,
		Category:   input.Category,
		Priority:   priority,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("item.Add: %w", err)
	}

	s.log.InfoContext(ctx, "item added",
		slog.String("item_id", created.ID.String()),
		slog.String("list_id", listID.String()))
	return created, nil
}
