package collaboration_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/collaboration"
	"github.com/heartmarshall/shoplist-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

func newRepo(t *testing.T) (*collaboration.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return collaboration.New(pool), pool
}

func TestRepo_Create_Duplicate(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	invitee := testhelper.SeedUser(t, pool)
	list := testhelper.SeedList(t, pool, owner.ID)

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Collaboration{
		ID:        uuid.New(),
		ListID:    list.ID,
		UserID:    invitee.ID,
		Role:      domain.RoleCollaborator,
		CreatedAt: now,
	}
	if _, err := repo.Create(ctx, &c); err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	dup := c
	dup.ID = uuid.New()
	_, err := repo.Create(ctx, &dup)
	if err == nil || !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestRepo_ListByList_JoinsUsers(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	invitee := testhelper.SeedUser(t, pool)
	list := testhelper.SeedList(t, pool, owner.ID)
	testhelper.SeedCollaboration(t, pool, list.ID, invitee.ID, domain.RoleCollaborator)

	collabs, err := repo.ListByList(ctx, list.ID)
	if err != nil {
		t.Fatalf("ListByList: unexpected error: %v", err)
	}
	if len(collabs) != 2 {
		t.Fatalf("collabs length: got %d, want 2 (owner + invitee)", len(collabs))
	}
	for _, c := range collabs {
		if c.User == nil {
			t.Fatalf("collaboration %s has no user joined", c.ID)
		}
	}
}

func TestRepo_ListByLists_GroupsByList(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	listA := testhelper.SeedList(t, pool, owner.ID)
	listB := testhelper.SeedList(t, pool, owner.ID)

	got, err := repo.ListByLists(ctx, []uuid.UUID{listA.ID, listB.ID})
	if err != nil {
		t.Fatalf("ListByLists: unexpected error: %v", err)
	}
	if len(got[listA.ID]) != 1 || len(got[listB.ID]) != 1 {
		t.Errorf("grouping mismatch: %d/%d, want 1/1", len(got[listA.ID]), len(got[listB.ID]))
	}

	empty, err := repo.ListByLists(ctx, nil)
	if err != nil {
		t.Fatalf("ListByLists empty: unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("empty input should return empty map, got %d entries", len(empty))
	}
}

func TestRepo_UpdateRole_And_Delete(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	invitee := testhelper.SeedUser(t, pool)
	list := testhelper.SeedList(t, pool, owner.ID)
	c := testhelper.SeedCollaboration(t, pool, list.ID, invitee.ID, domain.RoleCollaborator)

	got, err := repo.UpdateRole(ctx, c.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: unexpected error: %v", err)
	}
	if got.Role != domain.RoleAdmin {
		t.Errorf("Role mismatch: got %s, want %s", got.Role, domain.RoleAdmin)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	_, err = repo.GetByID(ctx, c.ID)
	if err == nil || !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}
