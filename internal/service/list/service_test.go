package list

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/shoplist-backend/internal/domain"
	"github.com/heartmarshall/shoplist-backend/pkg/ctxutil"
)

func authedCtx(userID uuid.UUID) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func ptrString(s string) *string { return &s }

func TestService_Create_WritesOwnerAdminRow(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	listsMock := &listRepoMock{
		CreateFunc: func(ctx context.Context, l *domain.List) (*domain.List, error) {
			created := *l
			return &created, nil
		},
	}
	collabsMock := &collabRepoMock{
		CreateFunc: func(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
			created := *c
			return &created, nil
		},
	}

	svc := NewService(slog.Default(), listsMock, collabsMock, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	created, err := svc.Create(authedCtx(ownerID), CreateInput{Name: " Groceries ", Description: ptrString("weekly run")})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.Name != "Groceries" {
		t.Errorf("name should be trimmed: got %q", created.Name)
	}
	if created.OwnerID != ownerID {
		t.Errorf("OwnerID mismatch: got %s, want %s", created.OwnerID, ownerID)
	}

	collabCalls := collabsMock.CreateCalls()
	if len(collabCalls) != 1 {
		t.Fatalf("collaboration create calls: got %d, want 1", len(collabCalls))
	}
	row := collabCalls[0].Collab
	if row.UserID != ownerID || row.ListID != created.ID || row.Role != domain.RoleAdmin {
		t.Errorf("owner admin row mismatch: %+v", row)
	}
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &listRepoMock{}, &collabRepoMock{}, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	_, err := svc.Create(authedCtx(uuid.New()), CreateInput{Name: "   "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}
}

func TestService_Create_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := NewService(slog.Default(), &listRepoMock{}, &collabRepoMock{}, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	_, err := svc.Create(context.Background(), CreateInput{Name: "Groceries"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestService_GetMine_AttachesRoles(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ownerID := uuid.New()
	ownListID := uuid.New()
	sharedListID := uuid.New()

	listsMock := &listRepoMock{
		ListByMemberFunc: func(ctx context.Context, id uuid.UUID) ([]domain.ListSummary, error) {
			return []domain.ListSummary{
				{List: domain.List{ID: ownListID, OwnerID: userID}},
				{List: domain.List{ID: sharedListID, OwnerID: ownerID}},
			}, nil
		},
	}
	collabsMock := &collabRepoMock{
		ListByListsFunc: func(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.Collaboration, error) {
			return map[uuid.UUID][]domain.Collaboration{
				ownListID: {{ListID: ownListID, UserID: userID, Role: domain.RoleAdmin}},
				sharedListID: {
					{ListID: sharedListID, UserID: ownerID, Role: domain.RoleAdmin},
					{ListID: sharedListID, UserID: userID, Role: domain.RoleCollaborator},
				},
			}, nil
		},
	}

	svc := NewService(slog.Default(), listsMock, collabsMock, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	got, err := svc.GetMine(authedCtx(userID))
	if err != nil {
		t.Fatalf("GetMine: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("summaries length: got %d, want 2", len(got))
	}
	if got[0].UserRole != domain.RoleAdmin {
		t.Errorf("own list role: got %s, want admin", got[0].UserRole)
	}
	if got[1].UserRole != domain.RoleCollaborator {
		t.Errorf("shared list role: got %s, want collaborator", got[1].UserRole)
	}
}

func TestService_GetByID_Outsider(t *testing.T) {
	t.Parallel()

	listID := uuid.New()
	listsMock := &listRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
			return &domain.List{ID: listID, OwnerID: uuid.New()}, nil
		},
	}
	collabsMock := &collabRepoMock{
		ListByListFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Collaboration, error) {
			return nil, nil
		},
	}

	svc := NewService(slog.Default(), listsMock, collabsMock, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	_, err := svc.GetByID(authedCtx(uuid.New()), listID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestService_GetByID_CollaboratorSeesItems(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	ownerID := uuid.New()
	listID := uuid.New()

	listsMock := &listRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
			return &domain.List{ID: listID, OwnerID: ownerID, Name: "Groceries"}, nil
		},
	}
	collabsMock := &collabRepoMock{
		ListByListFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Collaboration, error) {
			return []domain.Collaboration{
				{ListID: listID, UserID: userID, Role: domain.RoleCollaborator},
			}, nil
		},
	}
	itemsMock := &itemRepoMock{
		ListActiveFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Item, error) {
			return []domain.Item{{ID: uuid.New(), ListID: listID, Name: "Milk"}}, nil
		},
	}
	usersMock := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: ownerID, Name: "Owner"}, nil
		},
	}

	svc := NewService(slog.Default(), listsMock, collabsMock, itemsMock, usersMock, passthroughTx())

	detail, err := svc.GetByID(authedCtx(userID), listID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if detail.UserRole != domain.RoleCollaborator {
		t.Errorf("UserRole: got %s, want collaborator", detail.UserRole)
	}
	if len(detail.Items) != 1 || detail.Items[0].Name != "Milk" {
		t.Errorf("items mismatch: %+v", detail.Items)
	}
	if detail.Owner.ID != ownerID {
		t.Errorf("owner mismatch: %+v", detail.Owner)
	}
}

func TestService_Update_CollaboratorForbidden(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	listID := uuid.New()

	listsMock := &listRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
			return &domain.List{ID: listID, OwnerID: uuid.New()}, nil
		},
	}
	collabsMock := &collabRepoMock{
		ListByListFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Collaboration, error) {
			return []domain.Collaboration{
				{ListID: listID, UserID: userID, Role: domain.RoleCollaborator},
			}, nil
		},
	}

	svc := NewService(slog.Default(), listsMock, collabsMock, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	_, err := svc.Update(authedCtx(userID), listID, UpdateInput{Name: ptrString("Renamed")})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	t.Parallel()

	adminID := uuid.New()
	listID := uuid.New()

	listsMock := &listRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
			return &domain.List{ID: listID, OwnerID: uuid.New()}, nil
		},
	}

	svc := NewService(slog.Default(), listsMock, &collabRepoMock{}, &itemRepoMock{}, &userRepoMock{}, passthroughTx())

	// Even an admin collaborator may not delete; only the owner.
	err := svc.Delete(authedCtx(adminID), listID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestService_Delete_CascadesInOrder(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	listID := uuid.New()
	var order []string

	listsMock := &listRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.List, error) {
			return &domain.List{ID: listID, OwnerID: ownerID}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			order = append(order, "list")
			return nil
		},
	}
	collabsMock := &collabRepoMock{
		DeleteByListFunc: func(ctx context.Context, id uuid.UUID) error {
			order = append(order, "collaborations")
			return nil
		},
	}
	itemsMock := &itemRepoMock{
		DeleteByListFunc: func(ctx context.Context, id uuid.UUID) error {
			order = append(order, "items")
			return nil
		},
	}

	svc := NewService(slog.Default(), listsMock, collabsMock, itemsMock, &userRepoMock{}, passthroughTx())

	if err := svc.Delete(authedCtx(ownerID), listID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}
	want := []string{"items", "collaborations", "list"}
	if len(order) != 3 || order[0] != want[0] || order[1] != want[1] || order[2] != want[2] {
		t.Errorf("delete order mismatch: got %v, want %v", order, want)
	}
}
