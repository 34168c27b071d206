package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const testDay = "2025-03-10"

type ShopHandlerTestSuite struct {
	handlerTestSuite
	slot *domain.ShopSlot
}

func TestShopHandlerSuite(t *testing.T) {
	suite.Run(t, new(ShopHandlerTestSuite))
}

func (s *ShopHandlerTestSuite) SetupTest() {
	s.handlerTestSuite.SetupTest()
	s.slot = &domain.ShopSlot{
		Day: testDay,
		Items: []domain.ShopItem{
			{ItemID: "card_001", Name: "Common card", Rarity: domain.RarityCommon, Price: 3},
			{ItemID: "card_003", Name: "Rare card", Rarity: domain.RarityRare, Price: 30},
		},
		GeneratedAt: testNow,
	}
	s.shop.EXPECT().Today().Return(testDay).AnyTimes()
}

func (s *ShopHandlerTestSuite) TestIndex() {
	s.shop.EXPECT().GetTodayShop(gomock.Any(), testDay).Return(s.slot, nil)

	status, body := s.do(http.MethodGet, RouteGroup+ShopRoute, s.token(1, tokens.RoleUser), "")
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"day":"2025-03-10"`)
	s.Contains(body, `"item_id":"card_003"`)
	s.Contains(body, `"price":30`)
}

func (s *ShopHandlerTestSuite) TestEmptyCatalog() {
	s.shop.EXPECT().GetTodayShop(gomock.Any(), testDay).Return(nil, domain.ErrEmptyCatalog)

	status, _ := s.do(http.MethodGet, RouteGroup+ShopRoute, s.token(1, tokens.RoleUser), "")
	s.Equal(http.StatusServiceUnavailable, status)
}

func (s *ShopHandlerTestSuite) TestBuy() {
	var userID int64 = 1
	item := s.slot.Items[1]

	s.shop.EXPECT().Purchase(gomock.Any(), userID, testDay, "card_003").Return(&service.ShopPurchaseResult{
		Item:    item,
		Owned:   &domain.OwnedItem{UserID: userID, ItemID: item.ItemID, AcquiredAt: testNow},
		Balance: 70,
	}, nil)
	s.shop.EXPECT().Purchase(gomock.Any(), userID, testDay, "card_009").Return(nil, domain.ErrCardNotInShop)
	s.shop.EXPECT().Purchase(gomock.Any(), userID, testDay, "card_001").Return(nil, domain.ErrInsufficientFunds)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{name: "all ok", payload: `{"item_id":"card_003"}`, wantStatus: http.StatusOK},
		{name: "not in shop", payload: `{"item_id":"card_009"}`, wantStatus: http.StatusNotFound},
		{name: "insufficient funds", payload: `{"item_id":"card_001"}`, wantStatus: http.StatusPaymentRequired},
		{name: "empty item", payload: `{}`, wantStatus: http.StatusUnprocessableEntity},
	}
	token := s.token(userID, tokens.RoleUser)
	for _, t := range cases {
		s.Run(t.name, func() {
			status, _ := s.do(http.MethodPost, RouteGroup+ShopBuyRoute, token, t.payload)
			s.Equal(t.wantStatus, status)
		})
	}
}
