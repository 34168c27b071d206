package pgrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listingColumns = "id, seller_id, item_id, price, status, buyer_id, created_at, updated_at, closed_at"

type ListingRepository struct {
	conn uow.DBTX
}

func NewListingRepository(conn uow.DBTX) *ListingRepository {
	return &ListingRepository{conn: conn}
}

// Create опирается на частичный уникальный индекс по (seller_id, item_id) для активных лотов.
func (r *ListingRepository) Create(ctx context.Context, args repoargs.ListingCreate) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx,
		`INSERT INTO listings (id, seller_id, item_id, price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (seller_id, item_id) WHERE status = 'active' DO NOTHING
		RETURNING `+listingColumns,
		uuid.New(), args.SellerID, args.ItemID, args.Price, string(domain.ListingStatusActive), args.CreatedAt,
	)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, duplicateErr("creating listing for item %s of seller %d", args.ItemID, args.SellerID)
		}
		return nil, convertErr(err, "creating listing for item %s of seller %d", args.ItemID, args.SellerID)
	}
	return listing, nil
}

func (r *ListingRepository) Find(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "finding listing %s", id)
	}
	return listing, nil
}

func (r *ListingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1 FOR UPDATE`, id)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "locking listing %s", id)
	}
	return listing, nil
}

func (r *ListingRepository) FindActive(ctx context.Context, sellerID int64, itemID string) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE seller_id = $1 AND item_id = $2 AND status = 'active'`,
		sellerID, itemID,
	)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "finding active listing for item %s of seller %d", itemID, sellerID)
	}
	return listing, nil
}

func (r *ListingRepository) ListActive(ctx context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error) {
	conditions := []string{"status = 'active'"}
	var args []any
	addCondition := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}
	if filter.ItemID != "" {
		addCondition("item_id = $%d", filter.ItemID)
	}
	if filter.SellerID != 0 {
		addCondition("seller_id = $%d", filter.SellerID)
	}
	if filter.MaxPrice > 0 {
		addCondition("price <= $%d", filter.MaxPrice)
	}

	query := `SELECT ` + listingColumns + ` FROM listings WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY created_at, id`
	if filter.Limit > 0 {
		args = append(args, int64(filter.Limit))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, int64(filter.Offset))
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, convertErr(err, "listing active listings")
	}
	return collectListings(rows, "listing active listings")
}

func (r *ListingRepository) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Listing, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+listingColumns+` FROM listings WHERE seller_id = $1 ORDER BY created_at, id`,
		sellerID,
	)
	if err != nil {
		return nil, convertErr(err, "listing listings of seller %d", sellerID)
	}
	return collectListings(rows, "listing listings of seller")
}

// Close условное обновление: строка меняется только пока лот активен, поэтому из двух конкурирующих
// закрытий успешно только одно.
func (r *ListingRepository) Close(ctx context.Context, args repoargs.ListingClose) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE listings SET status = $2, buyer_id = $3, closed_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'active'
		RETURNING `+listingColumns,
		args.ID, string(args.Status), args.BuyerID, args.ClosedAt,
	)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "closing listing %s", args.ID)
	}
	return listing, nil
}

func (r *ListingRepository) UpdatePrice(
	ctx context.Context,
	id uuid.UUID,
	price int64,
	at time.Time,
) (*domain.Listing, error) {
	row := r.conn.QueryRow(ctx,
		`UPDATE listings SET price = $2, updated_at = $3 WHERE id = $1 AND status = 'active'
		RETURNING `+listingColumns,
		id, price, at,
	)
	listing, err := scanListing(row)
	if err != nil {
		return nil, convertErr(err, "updating price of listing %s", id)
	}
	return listing, nil
}

func (r *ListingRepository) CountActive(ctx context.Context, sellerID int64, itemID string) (int64, error) {
	var count int64
	err := r.conn.QueryRow(ctx,
		`SELECT COUNT(*) FROM listings WHERE seller_id = $1 AND item_id = $2 AND status = 'active'`,
		sellerID, itemID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting active listings for item %s of seller %d", itemID, sellerID)
	}
	return count, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	var status string
	if err := row.Scan(
		&l.ID, &l.SellerID, &l.ItemID, &l.Price, &status, &l.BuyerID, &l.CreatedAt, &l.UpdatedAt, &l.ClosedAt,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	l.Status = domain.ListingStatus(status)
	return &l, nil
}

func collectListings(rows pgx.Rows, msg string) ([]domain.Listing, error) {
	defer rows.Close()
	var res []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, convertErr(err, "%s", msg)
		}
		res = append(res, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	return res, nil
}
