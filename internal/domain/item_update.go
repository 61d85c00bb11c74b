package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field is a tri-state value in a partial update: absent from the request,
// present as an explicit null, or present with a value.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// SetField returns a Field carrying a value.
func SetField[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// NullField returns a Field carrying an explicit null.
func NullField[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Ptr returns the value as a pointer, or nil for null. Only meaningful when Set.
func (f Field[T]) Ptr() *T {
	if !f.Set || f.Null {
		return nil
	}
	v := f.Value
	return &v
}

// ItemPatch is the client-writable part of an item-update request.
// System fields (id, listId, purchasedById, purchasedAt, timestamps) are not
// representable here: the transport layer drops them silently and records
// their names in Dropped. Field names that are neither writable nor system
// end up in Unknown and reject the whole request.
type ItemPatch struct {
	Name        Field[string]
	Quantity    Field[float64]
	PriceLimit  Field[float64]
	ActualPrice Field[float64]
	Notes       Field[string]
	Category    Field[string]
	Priority    Field[Priority]
	Purchased   Field[bool]

	Dropped []string
	Unknown []string
}

// IsEmpty reports whether the patch carries no writable fields.
func (p ItemPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Quantity.Set && !p.PriceLimit.Set &&
		!p.ActualPrice.Set && !p.Notes.Set && !p.Category.Set &&
		!p.Priority.Set && !p.Purchased.Set
}

// ItemChange is the final set of columns to persist for an item update,
// including fields derived from the purchase-state transition. Unset fields
// retain their persisted values.
type ItemChange struct {
	Name          Field[string]
	Quantity      Field[float64]
	PriceLimit    Field[float64]
	ActualPrice   Field[float64]
	Notes         Field[string]
	Category      Field[string]
	Priority      Field[Priority]
	Purchased     Field[bool]
	PurchasedByID Field[uuid.UUID]
	PurchasedAt   Field[time.Time]
}

// ReconcileItemUpdate turns a partial update request into the final change to
// persist, enforcing field-level write permissions and deriving the
// purchase-state side effects.
//
// The contract, in order:
//  1. every present field must pass shape validation, independent of role;
//  2. unknown fields reject the whole request; then each present field is
//     checked against the caller's role and the first denied field aborts
//     with no partial application;
//  3. a request without writable fields is rejected, distinguishing an empty
//     payload from one whose fields were all dropped;
//  4. a purchased transition false→true stamps PurchasedAt/PurchasedByID and,
//     when no actual price was supplied now or stored before, falls back to
//     the price limit; a transition true→false clears all three purchase
//     fields, overriding any actual price supplied in the same request.
func ReconcileItemUpdate(patch ItemPatch, m Membership, current Item, callerID uuid.UUID, now time.Time) (ItemChange, error) {
	var change ItemChange

	// Step 1: shape validation, before any permission check.
	if err := validatePatchShape(patch); err != nil {
		return ItemChange{}, err
	}

	// Step 2: unknown fields reject the request outright.
	if len(patch.Unknown) > 0 {
		return ItemChange{}, &UnknownFieldError{Field: patch.Unknown[0]}
	}

	// Permission walk in a fixed field order; the first denial aborts.
	type fieldPerm struct {
		name      string
		set       bool
		adminOnly bool
	}
	walk := []fieldPerm{
		{"name", patch.Name.Set, true},
		{"quantity", patch.Quantity.Set, true},
		{"priceLimit", patch.PriceLimit.Set, true},
		{"purchased", patch.Purchased.Set, false},
		{"actualPrice", patch.ActualPrice.Set, false},
		{"notes", patch.Notes.Set, false},
		{"category", patch.Category.Set, false},
		{"priority", patch.Priority.Set, false},
	}
	for _, f := range walk {
		if !f.set {
			continue
		}
		if f.adminOnly {
			if !m.IsAdmin {
				return ItemChange{}, &PermissionError{Field: f.name}
			}
		} else if !m.IsAdmin && !m.IsCollaborator {
			return ItemChange{}, &PermissionError{Field: f.name}
		}
	}

	// Step 3: nothing left to write is a client error either way, but the
	// message tells an empty payload apart from an entirely dropped one.
	if patch.IsEmpty() {
		if len(patch.Dropped) > 0 {
			return ItemChange{}, NewValidationError("body", "no updatable fields provided")
		}
		return ItemChange{}, NewValidationError("body", "no data provided for update")
	}

	change.Name = patch.Name
	change.Quantity = patch.Quantity
	change.PriceLimit = patch.PriceLimit
	change.ActualPrice = patch.ActualPrice
	change.Notes = patch.Notes
	change.Category = patch.Category
	change.Priority = patch.Priority

	// Step 4: purchase-state side effects, only on a real transition.
	if patch.Purchased.Set && patch.Purchased.Value != current.Purchased {
		change.Purchased = patch.Purchased
		if patch.Purchased.Value {
			change.PurchasedAt = SetField(now)
			change.PurchasedByID = SetField(callerID)
			if !patch.ActualPrice.Set && current.ActualPrice == nil && current.PriceLimit != nil {
				change.ActualPrice = SetField(*current.PriceLimit)
			}
		} else {
			change.PurchasedAt = NullField[time.Time]()
			change.PurchasedByID = NullField[uuid.UUID]()
			change.ActualPrice = NullField[float64]()
		}
	}

	return change, nil
}

func validatePatchShape(p ItemPatch) error {
	if p.Name.Set {
		if p.Name.Null {
			return NewValidationError("name", "must not be null")
		}
		if p.Name.Value == "" {
			return NewValidationError("name", "must not be empty")
		}
	}
	if p.Quantity.Set {
		if p.Quantity.Null {
			return NewValidationError("quantity", "must not be null")
		}
		if p.Quantity.Value <= 0 {
			return NewValidationError("quantity", "must be a positive number")
		}
	}
	if p.PriceLimit.Set && !p.PriceLimit.Null && p.PriceLimit.Value < 0 {
		return NewValidationError("priceLimit", "must be a non-negative number or null")
	}
	if p.ActualPrice.Set && !p.ActualPrice.Null && p.ActualPrice.Value < 0 {
		return NewValidationError("actualPrice", "must be a non-negative number or null")
	}
	if p.Purchased.Set && p.Purchased.Null {
		return NewValidationError("purchased", "must be true or false")
	}
	if p.Priority.Set {
		if p.Priority.Null {
			return NewValidationError("priority", "must not be null")
		}
		if !p.Priority.Value.Valid() {
			return NewValidationError("priority", "must be one of LOW, MEDIUM, HIGH, URGENT")
		}
	}
	return nil
}
