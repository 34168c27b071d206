package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/google/uuid"
)

type MarketService struct {
	uow      uow.UOW
	opts     Options
	listings ListingRepository
}

func NewMarketService(u uow.UOW, opts Options) (*MarketService, error) {
	listings, err := repoOf[ListingRepository](u, repoargs.ListingRepoName)
	if err != nil {
		return nil, err
	}
	return &MarketService{
		uow:      u,
		opts:     opts.withDefaults(),
		listings: listings,
	}, nil
}

// CreateListing выставляет карточку на продажу. Порядок проверок: цена, владение, уже активный лот.
func (m *MarketService) CreateListing(
	ctx context.Context,
	sellerID int64,
	itemID string,
	price int64,
) (*domain.Listing, error) {
	if price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	var listing *domain.Listing
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
		if err != nil {
			return err
		}
		locked, lockErr := accounts.FindForUpdate(c, sellerID)
		if lockErr != nil {
			return fmt.Errorf("locking seller: %w", lockErr)
		}
		if len(locked) == 0 {
			return domain.ErrNotOwned
		}

		ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
		if err != nil {
			return err
		}
		owned, countErr := ownership.Count(c, sellerID, itemID)
		if countErr != nil {
			return fmt.Errorf("counting owned: %w", countErr)
		}
		if owned == 0 {
			return domain.ErrNotOwned
		}

		listings, err := repoFrom[ListingRepository](tx, repoargs.ListingRepoName)
		if err != nil {
			return err
		}
		if _, activeErr := listings.FindActive(c, sellerID, itemID); activeErr == nil {
			return domain.ErrAlreadyListed
		} else if !errors.Is(activeErr, domain.ErrRecordNotFound) {
			return fmt.Errorf("finding active listing: %w", activeErr)
		}

		listing, err = listings.Create(c, repoargs.ListingCreate{
			SellerID:  sellerID,
			ItemID:    itemID,
			Price:     price,
			CreatedAt: m.opts.Clock(),
		})
		if errors.Is(err, domain.ErrDuplicateKey) {
			return domain.ErrAlreadyListed
		}
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrNotOwned) || errors.Is(txErr, domain.ErrAlreadyListed) {
			return nil, txErr
		}
		return nil, fmt.Errorf("create listing for %s by %d: %w", itemID, sellerID, txErr)
	}
	return listing, nil
}

func (m *MarketService) ListActive(ctx context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error) {
	listings, err := m.listings.ListActive(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list active listings: %w", err)
	}
	return listings, nil
}

// ListBySeller все лоты продавца, включая закрытые.
func (m *MarketService) ListBySeller(ctx context.Context, sellerID int64) ([]domain.Listing, error) {
	listings, err := m.listings.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("list listings of seller %d: %w", sellerID, err)
	}
	return listings, nil
}

func (m *MarketService) GetListing(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	listing, err := m.listings.Find(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	return listing, nil
}

type MarketPurchaseResult struct {
	Listing       *domain.Listing
	BuyerBalance  int64
	SellerBalance int64
}

// Purchase покупка лота. Одной транзакцией: списание у покупателя, зачисление продавцу, передача карточки,
// закрытие лота. Если у продавца больше нет карточки, ничего не меняется и возвращается
// domain.ErrOwnershipInconsistency.
func (m *MarketService) Purchase(ctx context.Context, buyerID int64, listingID uuid.UUID) (*MarketPurchaseResult, error) {
	var res MarketPurchaseResult
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		listings, err := repoFrom[ListingRepository](tx, repoargs.ListingRepoName)
		if err != nil {
			return err
		}
		listing, findErr := lockActiveListing(c, listings, listingID)
		if findErr != nil {
			return findErr
		}
		if listing.SellerID == buyerID {
			return domain.ErrSelfPurchase
		}

		now := m.opts.Clock()
		if _, _, ensureErr := ensureAccount(c, tx, buyerID, m.opts.StartingBalance, now); ensureErr != nil {
			return ensureErr
		}
		balances, postErr := post(c, tx, now,
			posting{
				UserID:      buyerID,
				Delta:       -listing.Price,
				Category:    domain.CategoryP2PPurchase,
				Description: fmt.Sprintf("listing %s: %s", listing.ID, listing.ItemID),
			},
			posting{
				UserID:      listing.SellerID,
				Delta:       listing.Price,
				Category:    domain.CategoryP2PSale,
				Description: fmt.Sprintf("listing %s: %s", listing.ID, listing.ItemID),
			},
		)
		if postErr != nil {
			if errors.Is(postErr, domain.ErrAccountNotFound) {
				return domain.ErrOwnershipInconsistency
			}
			return postErr
		}

		ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
		if err != nil {
			return err
		}
		if _, moveErr := ownership.MoveOne(c, listing.SellerID, buyerID, listing.ItemID, now); moveErr != nil {
			if errors.Is(moveErr, domain.ErrRecordNotFound) {
				return domain.ErrOwnershipInconsistency
			}
			return fmt.Errorf("moving item: %w", moveErr)
		}

		closed, closeErr := listings.Close(c, repoargs.ListingClose{
			ID:       listing.ID,
			Status:   domain.ListingStatusSold,
			BuyerID:  &buyerID,
			ClosedAt: now,
		})
		if closeErr != nil {
			if errors.Is(closeErr, domain.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return fmt.Errorf("closing listing: %w", closeErr)
		}

		res = MarketPurchaseResult{
			Listing:       closed,
			BuyerBalance:  balances[buyerID],
			SellerBalance: balances[listing.SellerID],
		}
		return nil
	})
	if txErr != nil {
		return nil, m.mapErr(txErr, "purchase listing %s by %d", listingID, buyerID)
	}
	return &res, nil
}

// RemoveListing снимает активный лот с продажи. Снять может только продавец.
func (m *MarketService) RemoveListing(ctx context.Context, sellerID int64, listingID uuid.UUID) (*domain.Listing, error) {
	var removed *domain.Listing
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		listings, err := repoFrom[ListingRepository](tx, repoargs.ListingRepoName)
		if err != nil {
			return err
		}
		listing, findErr := lockActiveListing(c, listings, listingID)
		if findErr != nil {
			return findErr
		}
		if listing.SellerID != sellerID {
			return domain.ErrNotOwner
		}
		removed, err = listings.Close(c, repoargs.ListingClose{
			ID:       listing.ID,
			Status:   domain.ListingStatusRemoved,
			ClosedAt: m.opts.Clock(),
		})
		return err
	})
	if txErr != nil {
		return nil, m.mapErr(txErr, "remove listing %s", listingID)
	}
	return removed, nil
}

// UpdatePrice меняет цену активного лота на месте.
func (m *MarketService) UpdatePrice(
	ctx context.Context,
	sellerID int64,
	listingID uuid.UUID,
	price int64,
) (*domain.Listing, error) {
	if price <= 0 {
		return nil, domain.ErrInvalidPrice
	}

	var updated *domain.Listing
	txErr := m.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		listings, err := repoFrom[ListingRepository](tx, repoargs.ListingRepoName)
		if err != nil {
			return err
		}
		listing, findErr := lockActiveListing(c, listings, listingID)
		if findErr != nil {
			return findErr
		}
		if listing.SellerID != sellerID {
			return domain.ErrNotOwner
		}
		updated, err = listings.UpdatePrice(c, listing.ID, price, m.opts.Clock())
		return err
	})
	if txErr != nil {
		return nil, m.mapErr(txErr, "update price of listing %s", listingID)
	}
	return updated, nil
}

// lockActiveListing блокирует лот. Отсутствующий и закрытый лот одинаково дают domain.ErrNotFound.
func lockActiveListing(ctx context.Context, listings ListingRepository, id uuid.UUID) (*domain.Listing, error) {
	listing, err := listings.FindForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("locking listing: %w", err)
	}
	if !listing.IsActive() {
		return nil, domain.ErrNotFound
	}
	return listing, nil
}

func (m *MarketService) mapErr(err error, format string, args ...any) error {
	for _, known := range []error{
		domain.ErrNotFound,
		domain.ErrNotOwner,
		domain.ErrSelfPurchase,
		domain.ErrInsufficientFunds,
		domain.ErrOwnershipInconsistency,
	} {
		if errors.Is(err, known) {
			return known
		}
	}
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
