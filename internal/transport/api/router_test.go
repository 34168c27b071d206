package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/logger"
	"github.com/fsdevblog/wish-ledger/internal/metrics"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/mocks"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/testutils"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// handlerTestSuite общая часть тестов обработчиков: роутер на моках сервисов.
type handlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	metrics    *metrics.Metrics
	jwtSecret  []byte
	ledger     *mocks.MockLedgerServicer
	rewards    *mocks.MockRewardServicer
	shop       *mocks.MockShopServicer
	market     *mocks.MockMarketServicer
	collection *mocks.MockCollectionServicer
	catalog    *mocks.MockCatalogServicer
}

func (s *handlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.jwtSecret = []byte("super secret key")
	s.metrics = metrics.New()
	s.ledger = mocks.NewMockLedgerServicer(mockCtrl)
	s.rewards = mocks.NewMockRewardServicer(mockCtrl)
	s.shop = mocks.NewMockShopServicer(mockCtrl)
	s.market = mocks.NewMockMarketServicer(mockCtrl)
	s.collection = mocks.NewMockCollectionServicer(mockCtrl)
	s.catalog = mocks.NewMockCatalogServicer(mockCtrl)

	// счет создается middleware на каждом пользовательском запросе.
	s.ledger.EXPECT().EnsureAccount(gomock.Any(), gomock.Any()).Return(&domain.Account{}, nil).AnyTimes()

	router, err := New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		Ledger:       s.ledger,
		Rewards:      s.rewards,
		Shop:         s.shop,
		Market:       s.market,
		Collection:   s.collection,
		Catalog:      s.catalog,
		Metrics:      s.metrics,
		JWTSecretKey: s.jwtSecret,
		Clock:        func() time.Time { return testNow },
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *handlerTestSuite) token(userID int64, role tokens.Role) string {
	token, err := tokens.GenerateUserJWT(userID, role, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

// do выполняет запрос и возвращает статус и тело ответа.
func (s *handlerTestSuite) do(method, url, token, body string) (int, string) {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if body != "" {
		args.Body = bytes.NewReader([]byte(body))
	}

	res, err := testutils.MakeRequest(args, testutils.WithJSON(), testutils.WithBearer(token))
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	raw, readErr := io.ReadAll(res.Body)
	s.Require().NoError(readErr)
	return res.StatusCode, string(raw)
}

type RouterTestSuite struct {
	handlerTestSuite
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) TestAuthorization() {
	expired, err := tokens.GenerateUserJWT(1, tokens.RoleUser, -time.Minute, s.jwtSecret)
	s.Require().NoError(err)
	foreign, err := tokens.GenerateUserJWT(1, tokens.RoleUser, time.Hour, []byte("another key"))
	s.Require().NoError(err)

	s.ledger.EXPECT().GetBalance(gomock.Any(), gomock.Any()).Times(0)

	for name, token := range map[string]string{"no token": "", "expired": expired, "foreign key": foreign} {
		s.Run(name, func() {
			status, body := s.do(http.MethodGet, RouteGroup+BalanceRoute, token, "")
			s.Equal(http.StatusUnauthorized, status)
			s.JSONEq(`{"error":"unauthorized"}`, body)
		})
	}
}

func (s *RouterTestSuite) TestRoles() {
	userToken := s.token(1, tokens.RoleUser)
	paymentsToken := s.token(2, tokens.RolePayments)

	s.ledger.EXPECT().AdminGrant(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	s.ledger.EXPECT().CreditExternalPayment(gomock.Any(), gomock.Any()).Times(0)

	cases := []struct {
		name   string
		method string
		url    string
		token  string
	}{
		{name: "user on admin", method: http.MethodPost, url: RouteGroup + AdminGroup + AdminGrantRoute, token: userToken},
		{name: "payments on admin", method: http.MethodPost, url: RouteGroup + AdminGroup + AdminGrantRoute, token: paymentsToken},
		{name: "user on payments", method: http.MethodPost, url: RouteGroup + PaymentsRoute, token: userToken},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			status, _ := s.do(t.method, t.url, t.token, `{}`)
			s.Equal(http.StatusForbidden, status)
		})
	}
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	s.ledger.EXPECT().Transfer(gomock.Any(), int64(1), int64(2), int64(50)).
		Return(nil, fmt.Errorf("transfer: %w", domain.ErrInsufficientFunds))

	status, _ := s.do(http.MethodPost, RouteGroup+TransferRoute, s.token(1, tokens.RoleUser), `{"to":2,"amount":50}`)
	s.Require().Equal(http.StatusPaymentRequired, status)

	status, body := s.do(http.MethodGet, MetricsRoute, "", "")
	s.Require().Equal(http.StatusOK, status)
	s.Contains(body, `wishes_economy_operations_total{operation="transfer",outcome="insufficient_funds"} 1`)
	s.True(strings.Contains(body, `route="/api/transfer"`))
}

func (s *RouterTestSuite) TestUnknownRoute() {
	status, _ := s.do(http.MethodGet, RouteGroup+"/nowhere", s.token(1, tokens.RoleUser), "")
	s.Equal(http.StatusNotFound, status)
}
