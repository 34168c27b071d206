package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	handlerTestSuite
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestBalance() {
	var userID int64 = 1
	var brokenUserID int64 = 2

	s.ledger.EXPECT().GetBalance(gomock.Any(), userID).Return(int64(120), nil)
	s.ledger.EXPECT().GetBalance(gomock.Any(), brokenUserID).Return(int64(0), errors.New("connection reset"))

	status, body := s.do(http.MethodGet, RouteGroup+BalanceRoute, s.token(userID, tokens.RoleUser), "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"user_id":1,"balance":120}`, body)

	status, body = s.do(http.MethodGet, RouteGroup+BalanceRoute, s.token(brokenUserID, tokens.RoleUser), "")
	s.Equal(http.StatusInternalServerError, status)
	// детали приватной ошибки клиенту не отдаются.
	s.JSONEq(`{"error":"internal server error"}`, body)
}

func (s *AccountHandlerTestSuite) TestHistory() {
	var userID int64 = 1
	transactions := []domain.Transaction{
		{ID: uuid.New(), UserID: userID, Amount: -30, Category: domain.CategoryShopPurchase, CreatedAt: testNow},
		{ID: uuid.New(), UserID: userID, Amount: 10, Category: domain.CategoryReward, CreatedAt: testNow},
	}
	gomock.InOrder(
		s.ledger.EXPECT().History(gomock.Any(), userID, uint(0)).Return(transactions, nil),
		// лимит больше допустимого урезается.
		s.ledger.EXPECT().History(gomock.Any(), userID, maxHistoryLimit).Return(transactions[:1], nil),
	)

	token := s.token(userID, tokens.RoleUser)

	status, body := s.do(http.MethodGet, RouteGroup+HistoryRoute, token, "")
	s.Equal(http.StatusOK, status)
	s.Contains(body, `"amount":-30`)
	s.Contains(body, string(domain.CategoryReward))

	status, _ = s.do(http.MethodGet, RouteGroup+HistoryRoute+"?limit=500", token, "")
	s.Equal(http.StatusOK, status)

	status, _ = s.do(http.MethodGet, RouteGroup+HistoryRoute+"?limit=abc", token, "")
	s.Equal(http.StatusBadRequest, status)
}

func (s *AccountHandlerTestSuite) TestTransfer() {
	var userID int64 = 1

	s.ledger.EXPECT().Transfer(gomock.Any(), userID, int64(2), int64(40)).
		Return(&service.TransferResult{FromBalance: 60, ToBalance: 140}, nil)
	s.ledger.EXPECT().Transfer(gomock.Any(), userID, int64(2), int64(400)).
		Return(nil, fmt.Errorf("transfer: %w", domain.ErrInsufficientFunds))
	s.ledger.EXPECT().Transfer(gomock.Any(), userID, int64(2), int64(-5)).
		Return(nil, domain.ErrInvalidAmount)
	s.ledger.EXPECT().Transfer(gomock.Any(), userID, userID, int64(5)).
		Return(nil, domain.ErrInvalidTransfer)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "all ok",
			payload:    `{"to":2,"amount":40}`,
			wantStatus: http.StatusOK,
			wantBody:   `{"balance":60,"recipient_balance":140}`,
		}, {
			name:       "insufficient funds",
			payload:    `{"to":2,"amount":400}`,
			wantStatus: http.StatusPaymentRequired,
			wantBody:   `{"error":"insufficient funds"}`,
		}, {
			name:       "negative amount",
			payload:    `{"to":2,"amount":-5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"invalid amount"}`,
		}, {
			name:       "to self",
			payload:    `{"to":1,"amount":5}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"invalid transfer"}`,
		}, {
			name:       "missing amount",
			payload:    `{"to":2}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "broken json",
			payload:    `{"to":`,
			wantStatus: http.StatusBadRequest,
		},
	}
	token := s.token(userID, tokens.RoleUser)
	for _, t := range cases {
		s.Run(t.name, func() {
			status, body := s.do(http.MethodPost, RouteGroup+TransferRoute, token, t.payload)
			s.Equal(t.wantStatus, status)
			if t.wantBody != "" {
				s.JSONEq(t.wantBody, body)
			}
		})
	}
}
