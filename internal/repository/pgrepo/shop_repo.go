package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type ShopRepository struct {
	conn uow.DBTX
}

func NewShopRepository(conn uow.DBTX) *ShopRepository {
	return &ShopRepository{conn: conn}
}

func (r *ShopRepository) Find(ctx context.Context, day string) (*domain.ShopSlot, error) {
	date, err := parseDay(day)
	if err != nil {
		return nil, err
	}
	row := r.conn.QueryRow(ctx, `SELECT day, items, generated_at FROM shop_slots WHERE day = $1`, date)
	slot, scanErr := scanShopSlot(row)
	if scanErr != nil {
		return nil, convertErr(scanErr, "finding shop slot %s", day)
	}
	return slot, nil
}

// CreateIfAbsent при конфликте по дню ждет фиксации конкурирующей вставки и перечитывает победителя.
func (r *ShopRepository) CreateIfAbsent(ctx context.Context, slot domain.ShopSlot) (*domain.ShopSlot, bool, error) {
	date, err := parseDay(slot.Day)
	if err != nil {
		return nil, false, err
	}
	row := r.conn.QueryRow(ctx,
		`INSERT INTO shop_slots (day, items, generated_at) VALUES ($1, $2, $3)
		ON CONFLICT (day) DO NOTHING
		RETURNING day, items, generated_at`,
		date, slot.Items, slot.GeneratedAt,
	)
	stored, scanErr := scanShopSlot(row)
	if scanErr == nil {
		return stored, true, nil
	}
	if !errors.Is(scanErr, pgx.ErrNoRows) {
		return nil, false, convertErr(scanErr, "creating shop slot %s", slot.Day)
	}

	existing, findErr := r.Find(ctx, slot.Day)
	if findErr != nil {
		return nil, false, findErr
	}
	return existing, false, nil
}

func (r *ShopRepository) Delete(ctx context.Context, day string) error {
	date, err := parseDay(day)
	if err != nil {
		return err
	}
	if _, execErr := r.conn.Exec(ctx, `DELETE FROM shop_slots WHERE day = $1`, date); execErr != nil {
		return convertErr(execErr, "deleting shop slot %s", day)
	}
	return nil
}

func parseDay(day string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("[repository/parsing shop day %q] %w: %s", day, domain.ErrUnknown, err.Error())
	}
	return date, nil
}

func scanShopSlot(row pgx.Row) (*domain.ShopSlot, error) {
	var slot domain.ShopSlot
	var day time.Time
	if err := row.Scan(&day, &slot.Items, &slot.GeneratedAt); err != nil {
		return nil, err //nolint:wrapcheck
	}
	slot.Day = day.Format(time.DateOnly)
	return &slot, nil
}
