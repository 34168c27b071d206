package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

type CollectionService struct {
	uow       uow.UOW
	opts      Options
	ownership OwnershipRepository
	catalog   CatalogRepository
}

func NewCollectionService(u uow.UOW, opts Options) (*CollectionService, error) {
	ownership, err := repoOf[OwnershipRepository](u, repoargs.OwnershipRepoName)
	if err != nil {
		return nil, err
	}
	catalog, err := repoOf[CatalogRepository](u, repoargs.CatalogRepoName)
	if err != nil {
		return nil, err
	}
	return &CollectionService{
		uow:       u,
		opts:      opts.withDefaults(),
		ownership: ownership,
		catalog:   catalog,
	}, nil
}

// Grant добавляет пользователю одну единицу карточки. Карточка должна быть в каталоге.
func (s *CollectionService) Grant(ctx context.Context, userID int64, itemID string) (*domain.OwnedItem, error) {
	if _, err := s.catalog.Find(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("grant item %s: %w", itemID, err)
	}

	var owned *domain.OwnedItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		now := s.opts.Clock()
		if _, _, err := ensureAccount(c, tx, userID, s.opts.StartingBalance, now); err != nil {
			return err
		}
		ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
		if err != nil {
			return err
		}
		owned, err = ownership.Grant(c, userID, itemID, now)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("grant item %s to user %d: %w", itemID, userID, txErr)
	}
	return owned, nil
}

// RevokeOne забирает одну единицу карточки. Единицы, зарезервированные активными лотами, не трогаются.
func (s *CollectionService) RevokeOne(ctx context.Context, userID int64, itemID string) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
		if err != nil {
			return err
		}
		if _, lockErr := accounts.FindForUpdate(c, userID); lockErr != nil {
			return fmt.Errorf("locking account: %w", lockErr)
		}
		free, err := freeUnits(c, tx, userID, itemID)
		if err != nil {
			return err
		}
		if free <= 0 {
			return domain.ErrItemListed
		}
		ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
		if err != nil {
			return err
		}
		return ownership.RevokeOne(c, userID, itemID)
	})
	if txErr != nil {
		return s.mapOwnershipErr(txErr, "revoke item %s from user %d", itemID, userID)
	}
	return nil
}

// TransferOne передает одну единицу карточки от fromID к toID атомарно.
func (s *CollectionService) TransferOne(
	ctx context.Context,
	fromID, toID int64,
	itemID string,
) (*domain.OwnedItem, error) {
	if fromID == toID {
		return nil, domain.ErrInvalidTransfer
	}

	var moved *domain.OwnedItem
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		now := s.opts.Clock()
		if _, _, err := ensureAccount(c, tx, toID, s.opts.StartingBalance, now); err != nil {
			return err
		}
		accounts, err := repoFrom[AccountRepository](tx, repoargs.AccountRepoName)
		if err != nil {
			return err
		}
		// обе стороны блокируются в одном порядке, как и при проводках.
		if _, lockErr := accounts.FindForUpdate(c, fromID, toID); lockErr != nil {
			return fmt.Errorf("locking accounts: %w", lockErr)
		}

		free, freeErr := freeUnits(c, tx, fromID, itemID)
		if freeErr != nil {
			return freeErr
		}
		if free <= 0 {
			return domain.ErrItemListed
		}

		ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
		if err != nil {
			return err
		}
		moved, err = ownership.MoveOne(c, fromID, toID, itemID, now)
		return err
	})
	if txErr != nil {
		return nil, s.mapOwnershipErr(txErr, "transfer item %s from %d to %d", itemID, fromID, toID)
	}
	return moved, nil
}

func (s *CollectionService) ListOwned(ctx context.Context, userID int64) ([]domain.OwnedItem, error) {
	items, err := s.ownership.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list owned by user %d: %w", userID, err)
	}
	return items, nil
}

func (s *CollectionService) CountOwned(ctx context.Context, userID int64, itemID string) (int64, error) {
	count, err := s.ownership.Count(ctx, userID, itemID)
	if err != nil {
		return 0, fmt.Errorf("count item %s of user %d: %w", itemID, userID, err)
	}
	return count, nil
}

func (s *CollectionService) mapOwnershipErr(err error, format string, args ...any) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrNotOwned
	}
	if errors.Is(err, domain.ErrNotOwned) || errors.Is(err, domain.ErrItemListed) {
		return err
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// freeUnits число единиц карточки, не зарезервированных активными лотами. domain.ErrNotOwned, если единиц нет.
func freeUnits(ctx context.Context, tx uow.TX, userID int64, itemID string) (int64, error) {
	ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
	if err != nil {
		return 0, err
	}
	owned, countErr := ownership.Count(ctx, userID, itemID)
	if countErr != nil {
		return 0, fmt.Errorf("counting owned: %w", countErr)
	}
	if owned == 0 {
		return 0, domain.ErrNotOwned
	}

	listings, err := repoFrom[ListingRepository](tx, repoargs.ListingRepoName)
	if err != nil {
		return 0, err
	}
	reserved, reservedErr := listings.CountActive(ctx, userID, itemID)
	if reservedErr != nil {
		return 0, fmt.Errorf("counting reserved: %w", reservedErr)
	}
	return owned - reserved, nil
}
