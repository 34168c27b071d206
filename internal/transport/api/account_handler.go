package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxHistoryLimit uint = 100

type AccountHandler struct {
	recorder
	ledger LedgerServicer
}

func NewAccountHandler(ledger LedgerServicer, rec OperationRecorder) *AccountHandler {
	return &AccountHandler{recorder: recorder{rec: rec}, ledger: ledger}
}

type BalanceResponse struct {
	UserID  int64 `json:"user_id"`
	Balance int64 `json:"balance"`
}

// Balance GET RouteGroup + BalanceRoute.
func (h *AccountHandler) Balance(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.ledger.GetBalance(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{UserID: currentUserID, Balance: balance})
}

type HistoryParams struct {
	Limit uint `binding:"omitempty,min=1" form:"limit"`
}

// History GET RouteGroup + HistoryRoute. Записи от новых к старым.
func (h *AccountHandler) History(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params HistoryParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	params.Limit = min(params.Limit, maxHistoryLimit)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.ledger.History(reqCtx, currentUserID, params.Limit)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponses(transactions))
}

type TransferParams struct {
	To     int64 `binding:"required" json:"to"`
	Amount int64 `binding:"required" json:"amount"`
}

type TransferResponse struct {
	Balance          int64 `json:"balance"`
	RecipientBalance int64 `json:"recipient_balance"`
}

// Transfer POST RouteGroup + TransferRoute.
func (h *AccountHandler) Transfer(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.ledger.Transfer(reqCtx, currentUserID, params.To, params.Amount)
	h.record("transfer", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, TransferResponse{Balance: res.FromBalance, RecipientBalance: res.ToBalance})
}
