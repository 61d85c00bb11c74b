package domain

import (
	"time"

	"github.com/google/uuid"
)

// List is a named shopping list owned by one user and optionally shared
// with others through collaborations.
type List struct {
	ID          uuid.UUID
	Name        string
	Description *string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ListSummary is a list enriched with membership-derived data for the
// "my lists" view: how many items are still pending and what role the
// requesting user holds.
type ListSummary struct {
	List
	Owner             User
	Collaborations    []Collaboration
	ItemCount         int
	PendingItemCount  int
	CollaboratorCount int

	// UserRole is the requesting user's collaboration role, or empty when
	// the user is the owner without an explicit collaboration row.
	UserRole Role
}

// ListDetail is a list with its full contents, returned by the single-list view.
type ListDetail struct {
	List
	Owner          User
	Collaborations []Collaboration
	Items          []Item
	UserRole       Role
}
