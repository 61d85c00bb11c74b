package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountAdmins(t *testing.T) {
	t.Parallel()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	collabs := []Collaboration{
		{UserID: a, Role: RoleAdmin},
		{UserID: b, Role: RoleAdmin},
		{UserID: c, Role: RoleCollaborator},
	}

	assert.Equal(t, 2, CountAdmins(collabs))
	assert.Equal(t, 1, CountAdmins(collabs, a))
	assert.Equal(t, 0, CountAdmins(collabs, a, b))
	assert.Equal(t, 2, CountAdmins(collabs, c))
}

// ---------------------------------------------------------------------------
// Invite
// ---------------------------------------------------------------------------

func TestCheckInvite_RequiresAdmin(t *testing.T) {
	t.Parallel()

	err := CheckInvite(Membership{IsCollaborator: true}, uuid.New(), uuid.New(), nil, RoleCollaborator)

	require.ErrorIs(t, err, ErrForbidden)
}

func TestCheckInvite_OwnerCannotBeInvited(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	err := CheckInvite(Membership{IsOwner: true, IsAdmin: true}, owner, owner, nil, RoleCollaborator)

	require.ErrorIs(t, err, ErrValidation)
}

func TestCheckInvite_AlreadyCollaborating(t *testing.T) {
	t.Parallel()

	invitee := uuid.New()
	collabs := []Collaboration{{UserID: invitee, Role: RoleCollaborator}}

	err := CheckInvite(Membership{IsAdmin: true}, uuid.New(), invitee, collabs, RoleAdmin)

	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestCheckInvite_InvalidRole(t *testing.T) {
	t.Parallel()

	err := CheckInvite(Membership{IsAdmin: true}, uuid.New(), uuid.New(), nil, Role("superadmin"))

	require.ErrorIs(t, err, ErrValidation)
}

func TestCheckInvite_OK(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckInvite(Membership{IsAdmin: true}, uuid.New(), uuid.New(), nil, RoleCollaborator))
}

// ---------------------------------------------------------------------------
// Remove
// ---------------------------------------------------------------------------

func TestCheckRemove_LastAdminRejected(t *testing.T) {
	t.Parallel()

	target := Collaboration{ID: uuid.New(), UserID: uuid.New(), Role: RoleAdmin}
	collabs := []Collaboration{target, {UserID: uuid.New(), Role: RoleCollaborator}}

	err := CheckRemove(Membership{IsAdmin: true}, target, collabs)

	require.ErrorIs(t, err, ErrConflict)
}

func TestCheckRemove_AdminWithAnotherAdminRemaining(t *testing.T) {
	t.Parallel()

	target := Collaboration{ID: uuid.New(), UserID: uuid.New(), Role: RoleAdmin}
	collabs := []Collaboration{target, {UserID: uuid.New(), Role: RoleAdmin}}

	require.NoError(t, CheckRemove(Membership{IsAdmin: true}, target, collabs))
}

func TestCheckRemove_CollaboratorAlwaysRemovable(t *testing.T) {
	t.Parallel()

	target := Collaboration{ID: uuid.New(), UserID: uuid.New(), Role: RoleCollaborator}
	collabs := []Collaboration{target}

	require.NoError(t, CheckRemove(Membership{IsAdmin: true}, target, collabs))
}

func TestCheckRemove_RequiresAdmin(t *testing.T) {
	t.Parallel()

	target := Collaboration{UserID: uuid.New(), Role: RoleCollaborator}

	err := CheckRemove(Membership{IsCollaborator: true}, target, []Collaboration{target})

	require.ErrorIs(t, err, ErrForbidden)
}

// ---------------------------------------------------------------------------
// Role change
// ---------------------------------------------------------------------------

func TestCheckRoleChange_OnlyOwner(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	admin := uuid.New() // admin collaborator, not the owner
	target := Collaboration{UserID: uuid.New(), Role: RoleCollaborator}

	err := CheckRoleChange(admin, owner, target, []Collaboration{target}, RoleAdmin)

	require.ErrorIs(t, err, ErrForbidden)
}

func TestCheckRoleChange_OwnerRoleImmutable(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	target := Collaboration{UserID: owner, Role: RoleAdmin}

	err := CheckRoleChange(owner, owner, target, []Collaboration{target}, RoleCollaborator)

	require.ErrorIs(t, err, ErrValidation)
}

func TestCheckRoleChange_DemoteSoleAdminRejected(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	target := Collaboration{UserID: uuid.New(), Role: RoleAdmin}
	collabs := []Collaboration{
		{UserID: owner, Role: RoleAdmin}, // the owner's own row does not count
		target,
	}

	err := CheckRoleChange(owner, owner, target, collabs, RoleCollaborator)

	require.ErrorIs(t, err, ErrConflict)
}

func TestCheckRoleChange_DemoteWithAnotherAdmin(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	target := Collaboration{UserID: uuid.New(), Role: RoleAdmin}
	collabs := []Collaboration{
		target,
		{UserID: uuid.New(), Role: RoleAdmin},
	}

	require.NoError(t, CheckRoleChange(owner, owner, target, collabs, RoleCollaborator))
}

func TestCheckRoleChange_Promote(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	target := Collaboration{UserID: uuid.New(), Role: RoleCollaborator}

	require.NoError(t, CheckRoleChange(owner, owner, target, []Collaboration{target}, RoleAdmin))
}

func TestCheckRoleChange_InvalidRole(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	target := Collaboration{UserID: uuid.New(), Role: RoleCollaborator}

	err := CheckRoleChange(owner, owner, target, []Collaboration{target}, Role("boss"))

	require.ErrorIs(t, err, ErrValidation)
}
