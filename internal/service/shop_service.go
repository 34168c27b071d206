package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
)

type ShopService struct {
	uow     uow.UOW
	opts    Options
	shop    ShopRepository
	catalog CatalogRepository
}

func NewShopService(u uow.UOW, opts Options) (*ShopService, error) {
	shop, err := repoOf[ShopRepository](u, repoargs.ShopRepoName)
	if err != nil {
		return nil, err
	}
	catalog, err := repoOf[CatalogRepository](u, repoargs.CatalogRepoName)
	if err != nil {
		return nil, err
	}
	return &ShopService{
		uow:     u,
		opts:    opts.withDefaults(),
		shop:    shop,
		catalog: catalog,
	}, nil
}

// Today ключ сегодняшнего дня по часам сервиса.
func (s *ShopService) Today() string {
	return Day(s.opts.Clock())
}

// GetTodayShop возвращает ассортимент на день day. Если его нет, генерирует и сохраняет. Из конкурирующих
// генераций сохраняется первая, остальные вызовы получают её же, поэтому цены за день не меняются.
func (s *ShopService) GetTodayShop(ctx context.Context, day string) (*domain.ShopSlot, error) {
	slot, err := s.shop.Find(ctx, day)
	if err == nil {
		return slot, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, fmt.Errorf("get shop for %s: %w", day, err)
	}

	generated, genErr := s.generate(ctx, day)
	if genErr != nil {
		return nil, fmt.Errorf("get shop for %s: %w", day, genErr)
	}
	stored, _, createErr := s.shop.CreateIfAbsent(ctx, *generated)
	if createErr != nil {
		return nil, fmt.Errorf("get shop for %s: %w", day, createErr)
	}
	return stored, nil
}

// Refresh безусловно заменяет ассортимент дня новым.
func (s *ShopService) Refresh(ctx context.Context, day string) (*domain.ShopSlot, error) {
	generated, genErr := s.generate(ctx, day)
	if genErr != nil {
		return nil, fmt.Errorf("refresh shop for %s: %w", day, genErr)
	}

	var stored *domain.ShopSlot
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		shop, err := repoFrom[ShopRepository](tx, repoargs.ShopRepoName)
		if err != nil {
			return err
		}
		if delErr := shop.Delete(c, day); delErr != nil {
			return delErr
		}
		stored, _, err = shop.CreateIfAbsent(c, *generated)
		return err
	})
	if txErr != nil {
		return nil, fmt.Errorf("refresh shop for %s: %w", day, txErr)
	}
	return stored, nil
}

type ShopPurchaseResult struct {
	Item    domain.ShopItem
	Owned   *domain.OwnedItem
	Balance int64
}

// Purchase покупка карточки из ассортимента дня по зафиксированной цене. Списание, запись в журнал и выдача
// карточки выполняются одной транзакцией.
func (s *ShopService) Purchase(
	ctx context.Context,
	userID int64,
	day string,
	itemID string,
) (*ShopPurchaseResult, error) {
	var res ShopPurchaseResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		shop, err := repoFrom[ShopRepository](tx, repoargs.ShopRepoName)
		if err != nil {
			return err
		}
		slot, findErr := shop.Find(c, day)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return domain.ErrCardNotInShop
			}
			return findErr
		}
		item, ok := slot.Find(itemID)
		if !ok {
			return domain.ErrCardNotInShop
		}

		now := s.opts.Clock()
		if _, _, ensureErr := ensureAccount(c, tx, userID, s.opts.StartingBalance, now); ensureErr != nil {
			return ensureErr
		}
		balances, postErr := post(c, tx, now, posting{
			UserID:      userID,
			Delta:       -item.Price,
			Category:    domain.CategoryShopPurchase,
			Description: fmt.Sprintf("shop purchase %s", item.ItemID),
		})
		if postErr != nil {
			return postErr
		}

		ownership, err := repoFrom[OwnershipRepository](tx, repoargs.OwnershipRepoName)
		if err != nil {
			return err
		}
		owned, grantErr := ownership.Grant(c, userID, item.ItemID, now)
		if grantErr != nil {
			return fmt.Errorf("granting item: %w", grantErr)
		}

		res = ShopPurchaseResult{Item: item, Owned: owned, Balance: balances[userID]}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrCardNotInShop) {
			return nil, domain.ErrCardNotInShop
		}
		if errors.Is(txErr, domain.ErrInsufficientFunds) {
			return nil, domain.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("shop purchase %s by user %d: %w", itemID, userID, txErr)
	}
	return &res, nil
}

// generate собирает ассортимент, не сохраняя его.
func (s *ShopService) generate(ctx context.Context, day string) (*domain.ShopSlot, error) {
	items, err := s.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	pools := s.pools(items)
	if len(pools) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	var picked []domain.CatalogItem
	if s.opts.ShopMode == ShopModePerTier {
		picked = s.pickPerTier(pools)
	} else {
		picked = s.pickWeighted(pools)
	}
	if len(picked) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	shopItems := make([]domain.ShopItem, 0, len(picked))
	for _, item := range picked {
		price, rollErr := s.opts.Policy.RollPrice(item.Rarity, s.opts.Rand)
		if rollErr != nil {
			return nil, rollErr
		}
		shopItems = append(shopItems, domain.ShopItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Rarity:   item.Rarity,
			Series:   item.Series,
			ImageURL: item.ImageURL,
			Price:    price,
		})
	}
	return &domain.ShopSlot{Day: day, Items: shopItems, GeneratedAt: s.opts.Clock()}, nil
}

// pools группирует карточки по редкостям, которые можно продать: есть диапазон цены и ненулевой вес.
func (s *ShopService) pools(items []domain.CatalogItem) map[domain.Rarity][]domain.CatalogItem {
	pools := make(map[domain.Rarity][]domain.CatalogItem)
	for _, item := range items {
		if _, ok := s.opts.Policy.PriceRange(item.Rarity); !ok {
			continue
		}
		if s.opts.Policy.SelectionWeight(item.Rarity) <= 0 {
			continue
		}
		pools[item.Rarity] = append(pools[item.Rarity], item)
	}
	return pools
}

func (s *ShopService) pickPerTier(pools map[domain.Rarity][]domain.CatalogItem) []domain.CatalogItem {
	var picked []domain.CatalogItem
	for _, r := range domain.Rarities() {
		pool := pools[r]
		if len(pool) == 0 {
			continue
		}
		picked = append(picked, pool[s.opts.Rand.IntN(len(pool))])
	}
	return picked
}

// pickWeighted N раз выбирает редкость по весу, затем равномерно карточку этой редкости. Выбранная карточка
// убирается из пула, поэтому карточки в ассортименте не повторяются. Если каталог меньше N, ассортимент короче.
func (s *ShopService) pickWeighted(pools map[domain.Rarity][]domain.CatalogItem) []domain.CatalogItem {
	rarities := make([]domain.Rarity, 0, len(pools))
	for r := range pools {
		rarities = append(rarities, r)
	}
	slices.Sort(rarities)

	table := s.opts.Policy.Table(rarities)
	remaining := clonePools(pools)

	picked := make([]domain.CatalogItem, 0, s.opts.ShopSlots)
	for len(picked) < s.opts.ShopSlots && table.Len() > 0 {
		r, ok := table.Pick(s.opts.Rand)
		if !ok {
			break
		}
		pool := remaining[r]
		i := s.opts.Rand.IntN(len(pool))
		picked = append(picked, pool[i])

		remaining[r] = slices.Delete(pool, i, i+1)
		if len(remaining[r]) == 0 {
			table = table.Without(r)
		}
	}
	return picked
}

func clonePools(pools map[domain.Rarity][]domain.CatalogItem) map[domain.Rarity][]domain.CatalogItem {
	res := make(map[domain.Rarity][]domain.CatalogItem, len(pools))
	for r, pool := range pools {
		res[r] = slices.Clone(pool)
	}
	return res
}

