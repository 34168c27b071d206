package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentsHandler struct {
	recorder
	ledger LedgerServicer
}

func NewPaymentsHandler(ledger LedgerServicer, rec OperationRecorder) *PaymentsHandler {
	return &PaymentsHandler{recorder: recorder{rec: rec}, ledger: ledger}
}

type PaymentParams struct {
	PaymentID string          `binding:"required,max_bytes=128" json:"payment_id"`
	UserID    int64           `binding:"required,min=1"         json:"user_id"`
	Units     int64           `json:"units"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `binding:"required,len=3"         json:"currency"`
}

type PaymentResponse struct {
	PaymentID string `json:"payment_id"`
	UserID    int64  `json:"user_id"`
	Credited  int64  `json:"credited"`
	Balance   int64  `json:"balance"`
}

// Credit POST RouteGroup + PaymentsRoute. Зачисление за внешний платеж. Повтор того же payment_id - 409 с
// данными исходного зачисления.
func (h *PaymentsHandler) Credit(c *gin.Context) {
	var params PaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.ledger.CreditExternalPayment(reqCtx, service.PaymentArgs{
		PaymentID: params.PaymentID,
		UserID:    params.UserID,
		Units:     params.Units,
		Amount:    params.Amount,
		Currency:  params.Currency,
	})
	h.record("external_payment", err)
	if err != nil {
		var dupErr *domain.DuplicatePaymentError
		if errors.As(err, &dupErr) {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error":      domain.ErrExternalPaymentDuplicate.Error(),
				"payment_id": dupErr.Payment.PaymentID,
				"user_id":    dupErr.Payment.UserID,
				"credited":   dupErr.Payment.Units,
			})
			return
		}
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, PaymentResponse{
		PaymentID: params.PaymentID,
		UserID:    res.UserID,
		Credited:  res.Delta,
		Balance:   res.Balance,
	})
}
