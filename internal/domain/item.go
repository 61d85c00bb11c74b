package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority is how urgently an item should be bought.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// Valid reports whether the priority is one of the known values.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) String() string { return string(p) }

// Item is a single entry on a shopping list.
//
// PriceLimit is the suggested/estimated unit price, ActualPrice the real
// unit price paid. Purchased, PurchasedByID and PurchasedAt are maintained
// jointly: all set or all clear, never mixed. DeletedAt marks a soft-deleted
// item, excluded from normal reads but kept for history.
type Item struct {
	ID            uuid.UUID
	ListID        uuid.UUID
	Name          string
	Quantity      float64
	PriceLimit    *float64
	ActualPrice   *float64
	Notes         *string
	Category      *string
	Priority      Priority
	Purchased     bool
	PurchasedByID *uuid.UUID
	PurchasedAt   *time.Time
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// PurchasedBy is populated by reads that join the buyer's profile.
	PurchasedBy *User
}
