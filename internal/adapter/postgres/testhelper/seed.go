package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a placeholder password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Name:         "Test User " + suffix,
		Email:        "testuser-" + suffix + "@example.com",
		PasswordHash: "$2a$10$seedseedseedseedseedseedseedseedseedseedseedseedseed",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedList creates a list owned by ownerID together with the owner's admin
// collaboration row. Returns a filled domain.List.
func SeedList(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.List {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	list := domain.List{
		ID:        uuid.New(),
		Name:      "Test List " + suffix,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO lists (id, name, description, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		list.ID, list.Name, list.Description, list.OwnerID, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert list: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO collaborations (id, list_id, user_id, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		uuid.New(), list.ID, ownerID, string(domain.RoleAdmin), now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedList insert owner collaboration: %v", err)
	}

	return list
}

// SeedCollaboration adds userID to the list with the given role.
func SeedCollaboration(t *testing.T, pool *pgxpool.Pool, listID, userID uuid.UUID, role domain.Role) domain.Collaboration {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	collab := domain.Collaboration{
		ID:        uuid.New(),
		ListID:    listID,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO collaborations (id, list_id, user_id, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		collab.ID, collab.ListID, collab.UserID, string(collab.Role), collab.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCollaboration insert: %v", err)
	}

	return collab
}

// SeedItem creates a pending item in the list. Returns a filled domain.Item.
func SeedItem(t *testing.T, pool *pgxpool.Pool, listID uuid.UUID) domain.Item {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.Item{
		ID:        uuid.New(),
		ListID:    listID,
		Name:      "Test Item " + suffix,
		Quantity:  1,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO items (id, list_id, name, quantity, priority, purchased, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, false, $6, $7)`,
		item.ID, item.ListID, item.Name, item.Quantity, string(item.Priority), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert: %v", err)
	}

	return item
}
