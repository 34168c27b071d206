package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CollectionHandlerTestSuite struct {
	handlerTestSuite
}

func TestCollectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CollectionHandlerTestSuite))
}

func (s *CollectionHandlerTestSuite) TestGift() {
	var userID int64 = 3
	s.collection.EXPECT().TransferOne(gomock.Any(), userID, int64(4), "card_002").Return(&domain.OwnedItem{}, nil)
	s.collection.EXPECT().TransferOne(gomock.Any(), userID, int64(4), "card_003").Return(nil, domain.ErrItemListed)
	s.collection.EXPECT().ListOwned(gomock.Any(), userID).
		Return([]domain.OwnedItem{{UserID: userID, ItemID: "card_002", AcquiredAt: testNow}}, nil)

	token := s.token(userID, tokens.RoleUser)

	status, _ := s.do(http.MethodPost, RouteGroup+GiftRoute, token, `{"to":4,"item_id":"card_002"}`)
	s.Equal(http.StatusNoContent, status)

	status, _ = s.do(http.MethodPost, RouteGroup+GiftRoute, token, `{"to":4,"item_id":"card_003"}`)
	s.Equal(http.StatusConflict, status)

	status, body := s.do(http.MethodGet, RouteGroup+CollectionRoute, token, "")
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"item_id":"card_002"`)
}
