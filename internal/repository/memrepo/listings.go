package memrepo

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/google/uuid"
)

type ListingRepository struct {
	db db
}

func (r *ListingRepository) Create(_ context.Context, args repoargs.ListingCreate) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.write(func(s *state) error {
		if activeListing(s, args.SellerID, args.ItemID) != nil {
			return duplicateErr("creating listing for item %s of seller %d", args.ItemID, args.SellerID)
		}
		listing = domain.Listing{
			ID:        uuid.New(),
			SellerID:  args.SellerID,
			ItemID:    args.ItemID,
			Price:     args.Price,
			Status:    domain.ListingStatusActive,
			CreatedAt: args.CreatedAt,
			UpdatedAt: args.CreatedAt,
		}
		s.listings[listing.ID] = listing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) Find(_ context.Context, id uuid.UUID) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.read(func(s *state) error {
		l, ok := s.listings[id]
		if !ok {
			return notFoundErr("finding listing %s", id)
		}
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	return r.Find(ctx, id)
}

func (r *ListingRepository) FindActive(_ context.Context, sellerID int64, itemID string) (*domain.Listing, error) {
	var listing *domain.Listing
	err := r.db.read(func(s *state) error {
		listing = activeListing(s, sellerID, itemID)
		if listing == nil {
			return notFoundErr("finding active listing for item %s of seller %d", itemID, sellerID)
		}
		return nil
	})
	return listing, err
}

func (r *ListingRepository) ListActive(_ context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error) {
	var res []domain.Listing
	err := r.db.read(func(s *state) error {
		for _, l := range s.listings {
			if !l.IsActive() ||
				(filter.ItemID != "" && l.ItemID != filter.ItemID) ||
				(filter.SellerID != 0 && l.SellerID != filter.SellerID) ||
				(filter.MaxPrice > 0 && l.Price > filter.MaxPrice) {
				continue
			}
			res = append(res, l)
		}
		return nil
	})
	sortListings(res)

	if filter.Offset > 0 {
		res = res[min(int(filter.Offset), len(res)):] //nolint:gosec
	}
	if filter.Limit > 0 && int(filter.Limit) < len(res) { //nolint:gosec
		res = res[:filter.Limit]
	}
	return res, err
}

func (r *ListingRepository) ListBySeller(_ context.Context, sellerID int64) ([]domain.Listing, error) {
	var res []domain.Listing
	err := r.db.read(func(s *state) error {
		for _, l := range s.listings {
			if l.SellerID == sellerID {
				res = append(res, l)
			}
		}
		return nil
	})
	sortListings(res)
	return res, err
}

func (r *ListingRepository) Close(_ context.Context, args repoargs.ListingClose) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.write(func(s *state) error {
		l, ok := s.listings[args.ID]
		if !ok || !l.IsActive() {
			return notFoundErr("closing listing %s", args.ID)
		}
		closedAt := args.ClosedAt
		l.Status = args.Status
		l.BuyerID = args.BuyerID
		l.ClosedAt = &closedAt
		l.UpdatedAt = closedAt
		s.listings[args.ID] = l
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) UpdatePrice(_ context.Context, id uuid.UUID, price int64, at time.Time) (*domain.Listing, error) {
	var listing domain.Listing
	err := r.db.write(func(s *state) error {
		l, ok := s.listings[id]
		if !ok || !l.IsActive() {
			return notFoundErr("updating price of listing %s", id)
		}
		l.Price = price
		l.UpdatedAt = at
		s.listings[id] = l
		listing = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) CountActive(_ context.Context, sellerID int64, itemID string) (int64, error) {
	var count int64
	err := r.db.read(func(s *state) error {
		for _, l := range s.listings {
			if l.IsActive() && l.SellerID == sellerID && l.ItemID == itemID {
				count++
			}
		}
		return nil
	})
	return count, err
}

func activeListing(s *state, sellerID int64, itemID string) *domain.Listing {
	for _, l := range s.listings {
		if l.IsActive() && l.SellerID == sellerID && l.ItemID == itemID {
			return &l
		}
	}
	return nil
}

func sortListings(listings []domain.Listing) {
	slices.SortFunc(listings, func(a, b domain.Listing) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}
