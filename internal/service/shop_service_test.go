package service

import (
	"sync"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/pricing"
	"github.com/fsdevblog/wish-ledger/internal/repository/memrepo"
	"github.com/stretchr/testify/suite"
)

type ShopServiceTestSuite struct {
	suite.Suite
	env  *testEnv
	shop *ShopService
}

func TestShopServiceSuite(t *testing.T) {
	suite.Run(t, new(ShopServiceTestSuite))
}

func (s *ShopServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T(), Options{})
	s.shop = s.env.services.Shop
}

func (s *ShopServiceTestSuite) TestGetTodayShopIsStable() {
	ctx := s.T().Context()
	day := s.shop.Today()
	s.Equal("2025-03-10", day)

	first, err := s.shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)
	s.Require().Len(first.Items, defaultShopSlots)

	// покупка не меняет ассортимент дня.
	s.env.fund(s.T(), 1, 5000)
	_, err = s.shop.Purchase(ctx, 1, day, first.Items[1].ItemID)
	s.Require().NoError(err)

	second, err := s.shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)
	s.Equal(first.Items, second.Items)
	s.Equal(first.GeneratedAt, second.GeneratedAt)

	policy := pricing.New()
	seen := make(map[string]struct{})
	for _, item := range first.Items {
		s.NotEqual(domain.RarityLimitedEdition, item.Rarity)
		rng, ok := policy.PriceRange(item.Rarity)
		s.Require().True(ok)
		s.GreaterOrEqual(item.Price, rng.Min)
		s.LessOrEqual(item.Price, rng.Max)

		s.NotContains(seen, item.ItemID)
		seen[item.ItemID] = struct{}{}
	}
}

func (s *ShopServiceTestSuite) TestSmallCatalogHasNoDuplicates() {
	ctx := s.T().Context()
	clock := newTestClock()
	services, err := Factory(memrepo.New(), Options{Clock: clock.Now, Rand: pricing.NewSeededRand(7, 11)})
	s.Require().NoError(err)
	s.Require().NoError(services.Catalog.Upsert(ctx, []domain.CatalogItem{
		{ID: "card_001", Name: "Card 1", Rarity: domain.RarityCommon},
		{ID: "card_002", Name: "Card 2", Rarity: domain.RarityCommon},
	}))

	day := services.Shop.Today()
	slot, err := services.Shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)
	s.Require().Len(slot.Items, 2)

	prices := make(map[string]int64)
	for _, item := range slot.Items {
		s.NotContains(prices, item.ItemID)
		prices[item.ItemID] = item.Price
	}

	_, err = services.Ledger.AdminGrant(ctx, 1, 100)
	s.Require().NoError(err)
	res, err := services.Shop.Purchase(ctx, 1, day, "card_001")
	s.Require().NoError(err)
	s.Equal(prices["card_001"], res.Item.Price)
	s.Equal(100-prices["card_001"], res.Balance)
}

func (s *ShopServiceTestSuite) TestConcurrentGenerationAgrees() {
	ctx := s.T().Context()
	day := "2025-03-11"

	const workers = 10
	var wg sync.WaitGroup
	slots := make([]*domain.ShopSlot, workers)
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			slots[i], errs[i] = s.shop.GetTodayShop(ctx, day)
		}()
	}
	wg.Wait()

	for i := range workers {
		s.Require().NoError(errs[i])
		s.Equal(slots[0].Items, slots[i].Items)
	}
}

func (s *ShopServiceTestSuite) TestRefreshReplacesSlot() {
	ctx := s.T().Context()
	day := s.shop.Today()

	_, err := s.shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)

	refreshed, err := s.shop.Refresh(ctx, day)
	s.Require().NoError(err)

	current, err := s.shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)
	s.Equal(refreshed.Items, current.Items)
}

func (s *ShopServiceTestSuite) TestPerTierMode() {
	env := newTestEnv(s.T(), Options{ShopMode: ShopModePerTier})

	slot, err := env.services.Shop.GetTodayShop(s.T().Context(), env.services.Shop.Today())
	s.Require().NoError(err)

	rarities := make(map[domain.Rarity]int)
	for _, item := range slot.Items {
		rarities[item.Rarity]++
	}
	// все редкости, кроме Limited Edition, ровно по одной карточке.
	s.Len(slot.Items, len(domain.Rarities())-1)
	s.NotContains(rarities, domain.RarityLimitedEdition)
	for r, count := range rarities {
		s.Equalf(1, count, "rarity %s", r)
	}
}

func (s *ShopServiceTestSuite) TestEmptyCatalog() {
	services, err := Factory(memrepo.New(), Options{})
	s.Require().NoError(err)

	_, err = services.Shop.GetTodayShop(s.T().Context(), "2025-03-10")
	s.ErrorIs(err, domain.ErrEmptyCatalog)
}

func (s *ShopServiceTestSuite) TestPurchase() {
	ctx := s.T().Context()
	day := s.shop.Today()
	s.env.fund(s.T(), 1, 5000)

	slot, err := s.shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)
	item := slot.Items[0]

	res, err := s.shop.Purchase(ctx, 1, day, item.ItemID)
	s.Require().NoError(err)
	s.Equal(item.Price, res.Item.Price)
	s.Equal(5000-item.Price, res.Balance)
	s.Equal(item.ItemID, res.Owned.ItemID)

	count, err := s.env.services.Collection.CountOwned(ctx, 1, item.ItemID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	history, err := s.env.services.Ledger.History(ctx, 1, 1)
	s.Require().NoError(err)
	s.Equal(domain.CategoryShopPurchase, history[0].Category)
	s.Equal(-item.Price, history[0].Amount)
	s.env.requireConsistent(s.T(), 1)
}

func (s *ShopServiceTestSuite) TestPurchaseNotInShop() {
	ctx := s.T().Context()
	day := s.shop.Today()
	s.env.fund(s.T(), 1, 5000)

	_, err := s.shop.Purchase(ctx, 1, day, "card_003")
	s.Require().ErrorIs(err, domain.ErrCardNotInShop)

	_, err = s.shop.GetTodayShop(ctx, day)
	s.Require().NoError(err)
	_, err = s.shop.Purchase(ctx, 1, day, s.env.itemOf(domain.RarityLimitedEdition).ID)
	s.ErrorIs(err, domain.ErrCardNotInShop)
	s.Equal(int64(5000), s.env.balance(s.T(), 1))
}

func (s *ShopServiceTestSuite) TestPurchaseInsufficientFundsChangesNothing() {
	ctx := s.T().Context()
	day := s.shop.Today()
	s.env.putShop(s.T(), domain.ShopSlot{
		Day: day,
		Items: []domain.ShopItem{
			{ItemID: "card_003", Name: "Card 3", Rarity: domain.RarityRare, Price: 30},
		},
		GeneratedAt: s.env.clock.Now(),
	})
	s.env.fund(s.T(), 1, 20)

	_, err := s.shop.Purchase(ctx, 1, day, "card_003")
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)

	s.Equal(int64(20), s.env.balance(s.T(), 1))
	count, err := s.env.services.Collection.CountOwned(ctx, 1, "card_003")
	s.Require().NoError(err)
	s.Equal(int64(0), count)
}
