package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level a collaboration grants on a list.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCollaborator Role = "collaborator"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleCollaborator
}

func (r Role) String() string { return string(r) }

// Collaboration is a grant of access to a list for a non-owner user.
// The (ListID, UserID) pair is unique. The list owner also holds an
// explicit admin row, created together with the list.
type Collaboration struct {
	ID        uuid.UUID
	ListID    uuid.UUID
	UserID    uuid.UUID
	Role      Role
	CreatedAt time.Time

	// User is populated by reads that join the collaborator's profile.
	User *User
}

// CountAdmins returns the number of admin-role collaborations on a list,
// not counting rows belonging to any of the skipped users.
func CountAdmins(collabs []Collaboration, skip ...uuid.UUID) int {
	n := 0
	for _, c := range collabs {
		if c.Role != RoleAdmin {
			continue
		}
		skipped := false
		for _, id := range skip {
			if c.UserID == id {
				skipped = true
				break
			}
		}
		if !skipped {
			n++
		}
	}
	return n
}

// CheckInvite validates an invitation of inviteeID to a list.
// The caller must be an admin; the invitee must not be the owner and must
// not already collaborate on the list.
func CheckInvite(m Membership, ownerID, inviteeID uuid.UUID, collabs []Collaboration, role Role) error {
	if !m.IsAdmin {
		return ErrForbidden
	}
	if !role.Valid() {
		return NewValidationError("role", "must be \"admin\" or \"collaborator\"")
	}
	if inviteeID == ownerID {
		return NewValidationError("invitedEmail", "user already owns this list")
	}
	for _, c := range collabs {
		if c.UserID == inviteeID {
			return ErrAlreadyExists
		}
	}
	return nil
}

// CheckRemove validates removing the given collaboration.
// Removing the last remaining admin-role collaboration is rejected so that
// a list never ends up without an admin-capable actor.
func CheckRemove(m Membership, target Collaboration, collabs []Collaboration) error {
	if !m.IsAdmin {
		return ErrForbidden
	}
	if target.Role == RoleAdmin && CountAdmins(collabs, target.UserID) == 0 {
		return ErrConflict
	}
	return nil
}

// CheckRoleChange validates changing a collaboration's role.
// Only the list owner may change roles; the owner's own implicit role is
// immutable, and the sole remaining admin (besides the owner) cannot be
// demoted.
func CheckRoleChange(callerID, ownerID uuid.UUID, target Collaboration, collabs []Collaboration, newRole Role) error {
	if !newRole.Valid() {
		return NewValidationError("role", "must be \"admin\" or \"collaborator\"")
	}
	if callerID != ownerID {
		return ErrForbidden
	}
	if target.UserID == ownerID {
		return NewValidationError("role", "the owner's role cannot be changed")
	}
	if target.Role == RoleAdmin && newRole == RoleCollaborator &&
		CountAdmins(collabs, target.UserID, ownerID) == 0 {
		return ErrConflict
	}
	return nil
}
