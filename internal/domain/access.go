package domain

import "github.com/google/uuid"

// Membership classifies a user's standing on a list. It is recomputed from
// the persisted collaboration set on every request; list membership can
// change between requests, so it is never cached.
type Membership struct {
	// IsOwner is true when the user owns the list.
	IsOwner bool
	// IsAdmin is true for the owner and for admin-role collaborators.
	IsAdmin bool
	// IsCollaborator is true for collaborator-role collaborations only,
	// mutually exclusive with IsAdmin.
	IsCollaborator bool
}

// HasAccess reports whether the user may read the list at all.
func (m Membership) HasAccess() bool {
	return m.IsOwner || m.IsAdmin || m.IsCollaborator
}

// Role returns the effective role name for responses: admins (including the
// owner) report "admin", collaborators "collaborator", outsiders "".
func (m Membership) Role() Role {
	switch {
	case m.IsAdmin:
		return RoleAdmin
	case m.IsCollaborator:
		return RoleCollaborator
	default:
		return ""
	}
}

// ResolveMembership computes the user's membership on a list from its owner
// and collaboration set. The owner is treated as admin whether or not an
// explicit collaboration row exists.
func ResolveMembership(userID, ownerID uuid.UUID, collabs []Collaboration) Membership {
	m := Membership{IsOwner: userID == ownerID}
	m.IsAdmin = m.IsOwner

	for _, c := range collabs {
		if c.UserID != userID {
			continue
		}
		switch c.Role {
		case RoleAdmin:
			m.IsAdmin = true
		case RoleCollaborator:
			if !m.IsAdmin {
				m.IsCollaborator = true
			}
		}
	}
	return m
}
