// Package collaboration implements the Collaboration repository using PostgreSQL.
package collaboration

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const collabColumns = "id, list_id, user_id, role, created_at"

// listByListSQL returns the collaborations of a list with user profiles joined.
const listByListSQL = `
SELECT c.id, c.list_id, c.user_id, c.role, c.created_at,
       u.id, u.name, u.email, u.created_at, u.updated_at
FROM collaborations c
JOIN users u ON u.id = c.user_id
WHERE c.list_id = $1
ORDER BY c.created_at ASC`

// listByListsSQL is the bulk variant used when assembling list summaries.
const listByListsSQL = `
SELECT c.id, c.list_id, c.user_id, c.role, c.created_at,
       u.id, u.name, u.email, u.created_at, u.updated_at
FROM collaborations c
JOIN users u ON u.id = c.user_id
WHERE c.list_id = ANY($1::uuid[])
ORDER BY c.created_at ASC`

// Repo provides collaboration persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new collaboration repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a collaboration. Inviting the same user to the same list
// twice violates a unique constraint and maps to ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Collaboration) (*domain.Collaboration, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("collaborations").
		Columns("id", "list_id", "user_id", "role", "created_at").
		Values(c.ID, c.ListID, c.UserID, c.Role, c.CreatedAt).
		Suffix("RETURNING " + collabColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert collaboration: %w", err)
	}

	row, err := scanCollab(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collaboration", c.ID)
	}
	return row, nil
}

// GetByID returns a collaboration by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Collaboration, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(collabColumns).From("collaborations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select collaboration: %w", err)
	}

	row, err := scanCollab(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collaboration", id)
	}
	return row, nil
}

// ListByList returns the collaborations of a list with user profiles attached.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Collaboration, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByListSQL, listID)
	if err != nil {
		return nil, postgres.MapError(err, "collaboration", uuid.Nil)
	}
	return collectCollabs(rows)
}

// ListByLists returns the collaborations of several lists at once,
// keyed by list id.
func (r *Repo) ListByLists(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][]domain.Collaboration, error) {
	if len(listIDs) == 0 {
		return map[uuid.UUID][]domain.Collaboration{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByListsSQL, listIDs)
	if err != nil {
		return nil, postgres.MapError(err, "collaboration", uuid.Nil)
	}
	collabs, err := collectCollabs(rows)
	if err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]domain.Collaboration, len(listIDs))
	for _, c := range collabs {
		out[c.ListID] = append(out[c.ListID], c)
	}
	return out, nil
}

// UpdateRole changes the role of a collaboration.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) (*domain.Collaboration, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("collaborations").
		Set("role", role).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + collabColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update collaboration: %w", err)
	}

	row, err := scanCollab(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "collaboration", id)
	}
	return row, nil
}

// Delete removes a collaboration row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("collaborations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete collaboration: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "collaboration", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("collaboration %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByList removes all collaborations of a list, used when the list
// itself is deleted inside a transaction.
func (r *Repo) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("collaborations").Where(sq.Eq{"list_id": listID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete collaborations: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "collaboration", uuid.Nil)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCollab(row rowScanner) (*domain.Collaboration, error) {
	var c domain.Collaboration
	err := row.Scan(&c.ID, &c.ListID, &c.UserID, &c.Role, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func collectCollabs(rows pgx.Rows) ([]domain.Collaboration, error) {
	defer rows.Close()

	var out []domain.Collaboration
	for rows.Next() {
		var (
			c domain.Collaboration
			u domain.User
		)
		err := rows.Scan(
			&c.ID, &c.ListID, &c.UserID, &c.Role, &c.CreatedAt,
			&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, postgres.MapError(err, "collaboration", uuid.Nil)
		}
		c.User = &u
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "collaboration", uuid.Nil)
	}
	return out, nil
}
