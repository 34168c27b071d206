package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct {
	conn uow.DBTX
}

func NewCatalogRepository(conn uow.DBTX) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

func (r *CatalogRepository) Upsert(ctx context.Context, items []domain.CatalogItem, fn repoargs.BatchExecQueryRow) {
	batch := new(pgx.Batch)
	for _, item := range items {
		batch.Queue(
			`INSERT INTO catalog_items (id, name, rarity, series, image_url) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE
			SET name = EXCLUDED.name, rarity = EXCLUDED.rarity, series = EXCLUDED.series, image_url = EXCLUDED.image_url`,
			item.ID, item.Name, item.Rarity.String(), item.Series, item.ImageURL,
		)
	}
	br := r.conn.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()

	for i := range items {
		_, err := br.Exec()
		if fn != nil {
			fn(i, convertErr(err, "upserting catalog item %s", items[i].ID))
		}
	}
}

func (r *CatalogRepository) Find(ctx context.Context, id string) (*domain.CatalogItem, error) {
	row := r.conn.QueryRow(ctx, `SELECT id, name, rarity, series, image_url FROM catalog_items WHERE id = $1`, id)
	item, err := scanCatalogItem(row)
	if err != nil {
		return nil, convertErr(err, "finding catalog item %s", id)
	}
	return item, nil
}

func (r *CatalogRepository) ListAll(ctx context.Context) ([]domain.CatalogItem, error) {
	rows, err := r.conn.Query(ctx, `SELECT id, name, rarity, series, image_url FROM catalog_items ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing catalog")
	}
	defer rows.Close()

	var res []domain.CatalogItem
	for rows.Next() {
		item, scanErr := scanCatalogItem(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning catalog item")
		}
		res = append(res, *item)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing catalog")
	}
	return res, nil
}

func scanCatalogItem(row pgx.Row) (*domain.CatalogItem, error) {
	var item domain.CatalogItem
	var rarity string
	if err := row.Scan(&item.ID, &item.Name, &rarity, &item.Series, &item.ImageURL); err != nil {
		return nil, err //nolint:wrapcheck
	}
	r, err := domain.ParseRarity(rarity)
	if err != nil {
		return nil, fmt.Errorf("catalog item %s: %w", item.ID, err)
	}
	item.Rarity = r
	return &item, nil
}
