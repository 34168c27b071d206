package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	sellerID int64 = 1
	buyerID  int64 = 2
)

type MarketServiceTestSuite struct {
	suite.Suite
	env    *testEnv
	market *MarketService
	item   domain.CatalogItem
}

func TestMarketServiceSuite(t *testing.T) {
	suite.Run(t, new(MarketServiceTestSuite))
}

func (s *MarketServiceTestSuite) SetupTest() {
	s.env = newTestEnv(s.T(), Options{})
	s.market = s.env.services.Market
	s.item = s.env.itemOf(domain.RarityEpic)

	_, err := s.env.services.Collection.Grant(s.T().Context(), sellerID, s.item.ID)
	s.Require().NoError(err)
	s.env.fund(s.T(), buyerID, 100)
}

func (s *MarketServiceTestSuite) list(price int64) *domain.Listing {
	listing, err := s.market.CreateListing(s.T().Context(), sellerID, s.item.ID, price)
	s.Require().NoError(err)
	return listing
}

func (s *MarketServiceTestSuite) TestListAndBuy() {
	ctx := s.T().Context()
	listing := s.list(50)
	s.Equal(domain.ListingStatusActive, listing.Status)

	res, err := s.market.Purchase(ctx, buyerID, listing.ID)
	s.Require().NoError(err)
	s.Equal(int64(50), res.BuyerBalance)
	s.Equal(int64(50), res.SellerBalance)
	s.Equal(domain.ListingStatusSold, res.Listing.Status)
	s.Require().NotNil(res.Listing.BuyerID)
	s.Equal(buyerID, *res.Listing.BuyerID)

	buyerCount, err := s.env.services.Collection.CountOwned(ctx, buyerID, s.item.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), buyerCount)
	sellerCount, err := s.env.services.Collection.CountOwned(ctx, sellerID, s.item.ID)
	s.Require().NoError(err)
	s.Equal(int64(0), sellerCount)

	stored, err := s.market.GetListing(ctx, listing.ID)
	s.Require().NoError(err)
	s.False(stored.IsActive())

	buyerHistory, err := s.env.services.Ledger.History(ctx, buyerID, 1)
	s.Require().NoError(err)
	s.Equal(domain.CategoryP2PPurchase, buyerHistory[0].Category)
	sellerHistory, err := s.env.services.Ledger.History(ctx, sellerID, 1)
	s.Require().NoError(err)
	s.Equal(domain.CategoryP2PSale, sellerHistory[0].Category)

	s.env.requireConsistent(s.T(), sellerID, buyerID)
}

func (s *MarketServiceTestSuite) TestCreateListingErrors() {
	ctx := s.T().Context()

	_, err := s.market.CreateListing(ctx, sellerID, s.item.ID, 0)
	s.Require().ErrorIs(err, domain.ErrInvalidPrice)
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.market.CreateListing(ctx, sellerID, s.env.itemOf(domain.RarityCommon).ID, 10)
	s.Require().ErrorIs(err, domain.ErrNotOwned)

	_, err = s.market.CreateListing(ctx, 77, s.item.ID, 10)
	s.Require().ErrorIs(err, domain.ErrNotOwned)

	s.list(10)
	_, err = s.market.CreateListing(ctx, sellerID, s.item.ID, 20)
	s.ErrorIs(err, domain.ErrAlreadyListed)
}

func (s *MarketServiceTestSuite) TestPurchaseErrors() {
	ctx := s.T().Context()
	listing := s.list(150)

	_, err := s.market.Purchase(ctx, sellerID, listing.ID)
	s.Require().ErrorIs(err, domain.ErrSelfPurchase)

	_, err = s.market.Purchase(ctx, buyerID, uuid.New())
	s.Require().ErrorIs(err, domain.ErrNotFound)

	_, err = s.market.Purchase(ctx, buyerID, listing.ID)
	s.Require().ErrorIs(err, domain.ErrInsufficientFunds)
	s.Equal(int64(100), s.env.balance(s.T(), buyerID))

	stored, err := s.market.GetListing(ctx, listing.ID)
	s.Require().NoError(err)
	s.True(stored.IsActive())
}

func (s *MarketServiceTestSuite) TestPurchaseOwnershipInconsistency() {
	ctx := s.T().Context()
	listing := s.list(50)

	// карточка пропала у продавца в обход рынка.
	ownership, err := repoOf[OwnershipRepository](s.env.u, repoargs.OwnershipRepoName)
	s.Require().NoError(err)
	s.Require().NoError(ownership.RevokeOne(ctx, sellerID, s.item.ID))

	_, err = s.market.Purchase(ctx, buyerID, listing.ID)
	s.Require().ErrorIs(err, domain.ErrOwnershipInconsistency)

	s.Equal(int64(100), s.env.balance(s.T(), buyerID))
	s.Equal(int64(0), s.env.balance(s.T(), sellerID))
	stored, err := s.market.GetListing(ctx, listing.ID)
	s.Require().NoError(err)
	s.True(stored.IsActive())
}

func (s *MarketServiceTestSuite) TestConcurrentPurchaseHasOneWinner() {
	ctx := s.T().Context()
	listing := s.list(60)

	buyers := []int64{10, 11, 12, 13, 14, 15, 16, 17}
	for _, id := range buyers {
		s.env.fund(s.T(), id, 100)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		winners  []int64
		notFound int
	)
	for _, id := range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.market.Purchase(ctx, id, listing.ID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, id)
			case errors.Is(err, domain.ErrNotFound):
				notFound++
			}
		}()
	}
	wg.Wait()

	s.Require().Len(winners, 1)
	s.Equal(len(buyers)-1, notFound)

	var total int64
	for _, id := range buyers {
		total += s.env.balance(s.T(), id)
	}
	total += s.env.balance(s.T(), sellerID)
	s.Equal(int64(100*len(buyers)), total)

	count, err := s.env.services.Collection.CountOwned(ctx, winners[0], s.item.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), count)
	s.env.requireConsistent(s.T(), append(buyers, sellerID)...)
}

func (s *MarketServiceTestSuite) TestPurchaseRacesRemoval() {
	ctx := s.T().Context()
	s.env.fund(s.T(), buyerID, 200)

	for range 20 {
		listing := s.list(10)

		var (
			wg                sync.WaitGroup
			buyErr, removeErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, buyErr = s.market.Purchase(ctx, buyerID, listing.ID)
		}()
		go func() {
			defer wg.Done()
			_, removeErr = s.market.RemoveListing(ctx, sellerID, listing.ID)
		}()
		wg.Wait()

		final, err := s.market.GetListing(ctx, listing.ID)
		s.Require().NoError(err)

		if buyErr == nil {
			s.Require().ErrorIs(removeErr, domain.ErrNotFound)
			s.Equal(domain.ListingStatusSold, final.Status)

			// карточка вернулась продавцу для следующего круга.
			_, err = s.env.services.Collection.TransferOne(ctx, buyerID, sellerID, s.item.ID)
			s.Require().NoError(err)
		} else {
			s.Require().ErrorIs(buyErr, domain.ErrNotFound)
			s.Require().NoError(removeErr)
			s.Equal(domain.ListingStatusRemoved, final.Status)
		}
	}
	s.env.requireConsistent(s.T(), buyerID, sellerID)
}

func (s *MarketServiceTestSuite) TestRemoveListing() {
	ctx := s.T().Context()
	listing := s.list(50)

	_, err := s.market.RemoveListing(ctx, buyerID, listing.ID)
	s.Require().ErrorIs(err, domain.ErrNotOwner)

	removed, err := s.market.RemoveListing(ctx, sellerID, listing.ID)
	s.Require().NoError(err)
	s.Equal(domain.ListingStatusRemoved, removed.Status)

	_, err = s.market.RemoveListing(ctx, sellerID, listing.ID)
	s.Require().ErrorIs(err, domain.ErrNotFound)
	_, err = s.market.Purchase(ctx, buyerID, listing.ID)
	s.Require().ErrorIs(err, domain.ErrNotFound)

	active, err := s.market.ListActive(ctx, repoargs.ListingFilter{})
	s.Require().NoError(err)
	s.Empty(active)

	mine, err := s.market.ListBySeller(ctx, sellerID)
	s.Require().NoError(err)
	s.Require().Len(mine, 1)
	s.Equal(domain.ListingStatusRemoved, mine[0].Status)

	// снятая карточка снова доступна для выставления.
	s.list(40)
}

func (s *MarketServiceTestSuite) TestUpdatePrice() {
	ctx := s.T().Context()
	listing := s.list(50)

	_, err := s.market.UpdatePrice(ctx, sellerID, listing.ID, -1)
	s.Require().ErrorIs(err, domain.ErrInvalidPrice)

	_, err = s.market.UpdatePrice(ctx, buyerID, listing.ID, 70)
	s.Require().ErrorIs(err, domain.ErrNotOwner)

	updated, err := s.market.UpdatePrice(ctx, sellerID, listing.ID, 75)
	s.Require().NoError(err)
	s.Equal(int64(75), updated.Price)
	s.Equal(listing.ID, updated.ID)

	cheap, err := s.market.ListActive(ctx, repoargs.ListingFilter{MaxPrice: 60})
	s.Require().NoError(err)
	s.Empty(cheap)

	byItem, err := s.market.ListActive(ctx, repoargs.ListingFilter{ItemID: s.item.ID})
	s.Require().NoError(err)
	s.Require().Len(byItem, 1)
	s.Equal(int64(75), byItem[0].Price)
}
