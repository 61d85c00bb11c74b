// Package list implements the List repository using PostgreSQL.
// Simple CRUD uses squirrel; the membership overview query uses raw SQL.
package list

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const listColumns = "id, name, description, owner_id, created_at, updated_at"

// listByMemberSQL returns every list the user owns or collaborates on,
// together with the owner profile and item/collaborator counts.
const listByMemberSQL = `
SELECT l.id, l.name, l.description, l.owner_id, l.created_at, l.updated_at,
       u.id, u.name, u.email, u.created_at, u.updated_at,
       (SELECT count(*) FROM items i
         WHERE i.list_id = l.id AND i.deleted_at IS NULL)               AS item_count,
       (SELECT count(*) FROM items i
         WHERE i.list_id = l.id AND i.deleted_at IS NULL
           AND NOT i.purchased)                                         AS pending_count,
       (SELECT count(*) FROM collaborations c WHERE c.list_id = l.id)   AS collaborator_count
FROM lists l
JOIN users u ON u.id = l.owner_id
WHERE l.owner_id = $1
   OR EXISTS (SELECT 1 FROM collaborations c
               WHERE c.list_id = l.id AND c.user_id = $1)
ORDER BY l.created_at DESC`

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new list repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new list and returns the persisted row.
func (r *Repo) Create(ctx context.Context, l *domain.List) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("lists").
		Columns("id", "name", "description", "owner_id", "created_at", "updated_at").
		Values(l.ID, l.Name, l.Description, l.OwnerID, l.CreatedAt, l.UpdatedAt).
		Suffix("RETURNING " + listColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert list: %w", err)
	}

	row, err := scanList(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", l.ID)
	}
	return row, nil
}

// GetByID returns a list by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(listColumns).From("lists").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select list: %w", err)
	}

	row, err := scanList(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return row, nil
}

// ListByMember returns summaries of every list the user owns or collaborates
// on, newest first. Collaborations are not populated here; callers load them
// in bulk when needed.
func (r *Repo) ListByMember(ctx context.Context, userID uuid.UUID) ([]domain.ListSummary, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByMemberSQL, userID)
	if err != nil {
		return nil, postgres.MapError(err, "list", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.ListSummary
	for rows.Next() {
		var s domain.ListSummary
		err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
			&s.Owner.ID, &s.Owner.Name, &s.Owner.Email, &s.Owner.CreatedAt, &s.Owner.UpdatedAt,
			&s.ItemCount, &s.PendingItemCount, &s.CollaboratorCount,
		)
		if err != nil {
			return nil, postgres.MapError(err, "list", uuid.Nil)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "list", uuid.Nil)
	}
	return out, nil
}

// Update modifies the list's name and/or description.
// An unset description field leaves the column untouched; a null one clears it.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, name *string, description domain.Field[string]) (*domain.List, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Update("lists").Set("updated_at", time.Now())
	if name != nil {
		b = b.Set("name", *name)
	}
	if description.Set {
		b = b.Set("description", description.Ptr())
	}

	sql, args, err := b.Where(sq.Eq{"id": id}).Suffix("RETURNING " + listColumns).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update list: %w", err)
	}

	row, err := scanList(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "list", id)
	}
	return row, nil
}

// Delete removes the list row. Items and collaborations must be deleted
// first, inside the same transaction.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("lists").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete list: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "list", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("list %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*domain.List, error) {
	var l domain.List
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.OwnerID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
