// Package item implements the Item repository using PostgreSQL.
// Items are soft-deleted; active queries always filter on deleted_at IS NULL.
package item

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

const itemColumns = "id, list_id, name, quantity, price_limit, actual_price, notes, category, " +
	"priority, purchased, purchased_by_id, purchased_at, deleted_at, created_at, updated_at"

// listActiveSQL returns the active items of a list with the buyer profile
// joined in, pending items first.
const listActiveSQL = `
SELECT i.id, i.list_id, i.name, i.quantity, i.price_limit, i.actual_price,
       i.notes, i.category, i.priority, i.purchased, i.purchased_by_id,
       i.purchased_at, i.deleted_at, i.created_at, i.updated_at,
       u.id, u.name, u.email, u.created_at, u.updated_at
FROM items i
LEFT JOIN users u ON u.id = i.purchased_by_id
WHERE i.list_id = $1 AND i.deleted_at IS NULL
ORDER BY i.purchased ASC, i.name ASC`

// listHistorySQL returns the items with history: purchased or soft-deleted,
// most recent activity first.
const listHistorySQL = `
SELECT i.id, i.list_id, i.name, i.quantity, i.price_limit, i.actual_price,
       i.notes, i.category, i.priority, i.purchased, i.purchased_by_id,
       i.purchased_at, i.deleted_at, i.created_at, i.updated_at,
       u.id, u.name, u.email, u.created_at, u.updated_at
FROM items i
LEFT JOIN users u ON u.id = i.purchased_by_id
WHERE i.list_id = $1 AND (i.purchased OR i.deleted_at IS NOT NULL)
ORDER BY i.purchased_at DESC NULLS LAST, i.deleted_at DESC NULLS LAST, i.created_at DESC`

// Repo provides item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Insert("items").
		Columns("id", "list_id", "name", "quantity", "price_limit", "actual_price",
			"notes", "category", "priority", "purchased", "created_at", "updated_at").
		Values(it.ID, it.ListID, it.Name, it.Quantity, it.PriceLimit, it.ActualPrice,
			it.Notes, it.Category, it.Priority, it.Purchased, it.CreatedAt, it.UpdatedAt).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item: %w", err)
	}

	row, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", it.ID)
	}
	return row, nil
}

// GetActive returns an item by id within a list, ignoring soft-deleted rows.
func (r *Repo) GetActive(ctx context.Context, listID, itemID uuid.UUID) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(itemColumns).From("items").
		Where(sq.Eq{"id": itemID, "list_id": listID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select item: %w", err)
	}

	row, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	return row, nil
}

// ListActive returns the active items of a list, pending first, then by name.
func (r *Repo) ListActive(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	return r.queryItems(ctx, listActiveSQL, listID)
}

// ListHistory returns the purchased and soft-deleted items of a list,
// ordered by most recent activity.
func (r *Repo) ListHistory(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	return r.queryItems(ctx, listHistorySQL, listID)
}

// ListPurchased returns the purchased active items of a list.
func (r *Repo) ListPurchased(ctx context.Context, listID uuid.UUID) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Select(itemColumns).From("items").
		Where(sq.Eq{"list_id": listID, "purchased": true, "deleted_at": nil}).
		OrderBy("purchased_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select purchased items: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, postgres.MapError(err, "item", uuid.Nil)
		}
		out = append(out, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}
	return out, nil
}

// ApplyChange persists an item change. Unset fields keep their stored values,
// null fields clear the column. Returns ErrNotFound when the item does not
// exist in the list or is soft-deleted.
func (r *Repo) ApplyChange(ctx context.Context, listID, itemID uuid.UUID, ch domain.ItemChange) (*domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := qb.Update("items").Set("updated_at", time.Now())
	b = setField(b, "name", ch.Name)
	b = setField(b, "quantity", ch.Quantity)
	b = setField(b, "price_limit", ch.PriceLimit)
	b = setField(b, "actual_price", ch.ActualPrice)
	b = setField(b, "notes", ch.Notes)
	b = setField(b, "category", ch.Category)
	b = setField(b, "priority", ch.Priority)
	b = setField(b, "purchased", ch.Purchased)
	b = setField(b, "purchased_by_id", ch.PurchasedByID)
	b = setField(b, "purchased_at", ch.PurchasedAt)

	sql, args, err := b.
		Where(sq.Eq{"id": itemID, "list_id": listID, "deleted_at": nil}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item: %w", err)
	}

	row, err := scanItem(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", itemID)
	}
	return row, nil
}

// SoftDelete marks the item deleted without removing the row.
func (r *Repo) SoftDelete(ctx context.Context, listID, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Update("items").
		Set("deleted_at", time.Now()).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": itemID, "list_id": listID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build soft delete item: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// DeleteByList removes all items of a list, used when the list itself is
// deleted inside a transaction.
func (r *Repo) DeleteByList(ctx context.Context, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := qb.Delete("items").Where(sq.Eq{"list_id": listID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete items: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "item", uuid.Nil)
	}
	return nil
}

func (r *Repo) queryItems(ctx context.Context, query string, listID uuid.UUID) ([]domain.Item, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, listID)
	if err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		var (
			it                 domain.Item
			uID                *uuid.UUID
			uName, uEmail      *string
			uCreated, uUpdated *time.Time
		)
		err := rows.Scan(
			&it.ID, &it.ListID, &it.Name, &it.Quantity, &it.PriceLimit, &it.ActualPrice,
			&it.Notes, &it.Category, &it.Priority, &it.Purchased, &it.PurchasedByID,
			&it.PurchasedAt, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt,
			&uID, &uName, &uEmail, &uCreated, &uUpdated,
		)
		if err != nil {
			return nil, postgres.MapError(err, "item", uuid.Nil)
		}
		if uID != nil {
			it.PurchasedBy = &domain.User{
				ID: *uID, Name: *uName, Email: *uEmail,
				CreatedAt: *uCreated, UpdatedAt: *uUpdated,
			}
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "item", uuid.Nil)
	}
	return out, nil
}

// setField adds a SET clause for a tri-state field: unset fields are skipped,
// null fields become NULL.
func setField[T any](b sq.UpdateBuilder, column string, f domain.Field[T]) sq.UpdateBuilder {
	if !f.Set {
		return b
	}
	if f.Null {
		return b.Set(column, nil)
	}
	return b.Set(column, f.Value)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(
		&it.ID, &it.ListID, &it.Name, &it.Quantity, &it.PriceLimit, &it.ActualPrice,
		&it.Notes, &it.Category, &it.Priority, &it.Purchased, &it.PurchasedByID,
		&it.PurchasedAt, &it.DeletedAt, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
