package pgrepo

import (
	"context"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

// oldestUnitQuery выбирает и блокирует самую старую единицу карточки у пользователя.
const oldestUnitQuery = `SELECT id FROM owned_items WHERE user_id = $1 AND item_id = $2 ORDER BY id LIMIT 1 FOR UPDATE`

type OwnershipRepository struct {
	conn uow.DBTX
}

func NewOwnershipRepository(conn uow.DBTX) *OwnershipRepository {
	return &OwnershipRepository{conn: conn}
}

func (r *OwnershipRepository) Grant(
	ctx context.Context,
	userID int64,
	itemID string,
	at time.Time,
) (*domain.OwnedItem, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO owned_items (user_id, item_id, acquired_at) VALUES ($1, $2, $3)
		RETURNING id, user_id, item_id, acquired_at`,
		userID, itemID, at,
	)
	item, err := scanOwnedItem(row)
	if err != nil {
		return nil, convertErr(err, "granting item %s to user %d", itemID, userID)
	}
	return item, nil
}

func (r *OwnershipRepository) RevokeOne(ctx context.Context, userID int64, itemID string) error {
	tag, err := r.conn.Exec(ctx, `DELETE FROM owned_items WHERE id = (`+oldestUnitQuery+`)`, userID, itemID)
	if err != nil {
		return convertErr(err, "revoking item %s from user %d", itemID, userID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "revoking item %s from user %d", itemID, userID)
	}
	return nil
}

func (r *OwnershipRepository) MoveOne(
	ctx context.Context,
	fromID, toID int64,
	itemID string,
	at time.Time,
) (*domain.OwnedItem, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE owned_items SET user_id = $3, acquired_at = $4 WHERE id = (`+oldestUnitQuery+`)
		RETURNING id, user_id, item_id, acquired_at`,
		fromID, itemID, toID, at,
	)
	item, err := scanOwnedItem(row)
	if err != nil {
		return nil, convertErr(err, "moving item %s from user %d to user %d", itemID, fromID, toID)
	}
	return item, nil
}

func (r *OwnershipRepository) ListByUser(ctx context.Context, userID int64) ([]domain.OwnedItem, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT id, user_id, item_id, acquired_at FROM owned_items WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing items of user %d", userID)
	}
	defer rows.Close()

	var res []domain.OwnedItem
	for rows.Next() {
		item, scanErr := scanOwnedItem(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning item of user %d", userID)
		}
		res = append(res, *item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing items of user %d", userID)
	}
	return res, nil
}

func (r *OwnershipRepository) Count(ctx context.Context, userID int64, itemID string) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM owned_items WHERE user_id = $1 AND item_id = $2`, userID, itemID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting item %s of user %d", itemID, userID)
	}
	return count, nil
}

func scanOwnedItem(row pgx.Row) (*domain.OwnedItem, error) {
	var item domain.OwnedItem
	if err := row.Scan(&item.ID, &item.UserID, &item.ItemID, &item.AcquiredAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &item, nil
}
