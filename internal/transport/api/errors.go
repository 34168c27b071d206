package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/metrics"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type serviceError struct {
	err     error
	status  int
	outcome string
}

// serviceErrors единственное место сопоставления отказов сервисов и HTTP статусов. Порядок важен: более
// конкретные ошибки раньше общих.
var serviceErrors = []serviceError{
	{err: domain.ErrInsufficientFunds, status: http.StatusPaymentRequired, outcome: "insufficient_funds"},
	{err: domain.ErrInvalidPrice, status: http.StatusUnprocessableEntity, outcome: "invalid_price"},
	{err: domain.ErrInvalidAmount, status: http.StatusUnprocessableEntity, outcome: "invalid_amount"},
	{err: domain.ErrInvalidTransfer, status: http.StatusUnprocessableEntity, outcome: "invalid_transfer"},
	{err: domain.ErrSelfPurchase, status: http.StatusUnprocessableEntity, outcome: "self_purchase"},
	{err: service.ErrInvalidCatalogItem, status: http.StatusUnprocessableEntity, outcome: "invalid_catalog_item"},
	{err: domain.ErrNotOwned, status: http.StatusForbidden, outcome: "not_owned"},
	{err: domain.ErrNotOwner, status: http.StatusForbidden, outcome: "not_owner"},
	{err: domain.ErrAlreadyListed, status: http.StatusConflict, outcome: "already_listed"},
	{err: domain.ErrItemListed, status: http.StatusConflict, outcome: "item_listed"},
	{err: domain.ErrAlreadyClaimed, status: http.StatusConflict, outcome: "already_claimed"},
	{err: domain.ErrExternalPaymentDuplicate, status: http.StatusConflict, outcome: "payment_duplicate"},
	{err: domain.ErrOwnershipInconsistency, status: http.StatusConflict, outcome: "ownership_inconsistency"},
	{err: domain.ErrCardNotInShop, status: http.StatusNotFound, outcome: "card_not_in_shop"},
	{err: domain.ErrAccountNotFound, status: http.StatusNotFound, outcome: "account_not_found"},
	{err: domain.ErrItemNotFound, status: http.StatusNotFound, outcome: "item_not_found"},
	{err: domain.ErrNotFound, status: http.StatusNotFound, outcome: "not_found"},
	{err: domain.ErrEmptyCatalog, status: http.StatusServiceUnavailable, outcome: "empty_catalog"},
}

func lookupServiceError(err error) (serviceError, bool) {
	for _, se := range serviceErrors {
		if errors.Is(err, se.err) {
			return se, true
		}
	}
	return serviceError{}, false
}

// outcomeOf метка результата операции для метрик.
func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeOK
	}
	if se, ok := lookupServiceError(err); ok {
		return se.outcome
	}
	return metrics.OutcomeError
}

// abortWithServiceError прерывает запрос статусом, соответствующим ошибке. Известные отказы публичные,
// остальное - 500 с приватной ошибкой в логе.
func abortWithServiceError(c *gin.Context, err error) {
	if se, ok := lookupServiceError(err); ok {
		_ = c.AbortWithError(se.status, se.err).SetType(gin.ErrorTypePublic)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

// abortWithBindError ошибки валидации - 422, неразбираемое тело - 400.
func abortWithBindError(c *gin.Context, err error) {
	var valErrs validator.ValidationErrors
	if errors.As(err, &valErrs) {
		_ = c.AbortWithError(http.StatusUnprocessableEntity, valErrs).SetType(gin.ErrorTypePublic)
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
}
