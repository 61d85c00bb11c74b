// Package notification implements the Notification repository using PostgreSQL.
package notification

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/shoplist-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shoplist-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const notificationColumns = "id, user_id, type, title, message, metadata, read, created_at"

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a notification.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("notifications").
		Columns("id", "user_id", "type", "title", "message", "metadata", "created_at").
		Values(n.ID, n.UserID, n.Type, n.Title, n.Message, n.Metadata, n.CreatedAt).
		Suffix("RETURNING " + notificationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert notification: %w", err)
	}

	row, err := scanNotification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", n.ID)
	}
	return row, nil
}

// ListByUser returns the user's notifications, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(notificationColumns).From("notifications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select notifications: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "notification", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, postgres.MapError(err, "notification", uuid.Nil)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "notification", uuid.Nil)
	}
	return out, nil
}

// MarkRead flags a notification as read, scoped to its owner so a user
// cannot touch someone else's feed.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("notifications").
		Set("read", true).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + notificationColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update notification: %w", err)
	}

	row, err := scanNotification(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	return row, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Metadata, &n.Read, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
