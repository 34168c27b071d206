package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminHandler операции администратора: начисления, выдача карточек, перегенерация магазина, сброс балансов.
type AdminHandler struct {
	recorder
	ledger     LedgerServicer
	collection CollectionServicer
	shop       ShopServicer
}

func NewAdminHandler(
	ledger LedgerServicer,
	collection CollectionServicer,
	shop ShopServicer,
	rec OperationRecorder,
) *AdminHandler {
	return &AdminHandler{
		recorder:   recorder{rec: rec},
		ledger:     ledger,
		collection: collection,
		shop:       shop,
	}
}

type GrantParams struct {
	UserID int64 `binding:"required,min=1" json:"user_id"`
	Amount int64 `json:"amount"`
}

// Grant POST RouteGroup + AdminGrantRoute.
func (h *AdminHandler) Grant(c *gin.Context) {
	var params GrantParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.ledger.AdminGrant(reqCtx, params.UserID, params.Amount)
	h.record("admin_grant", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{UserID: res.UserID, Balance: res.Balance})
}

type GrantItemParams struct {
	UserID int64  `binding:"required,min=1"   json:"user_id"`
	ItemID string `binding:"required,item_id" json:"item_id"`
}

// GrantItem POST RouteGroup + AdminGrantItemRoute.
func (h *AdminHandler) GrantItem(c *gin.Context) {
	var params GrantItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	owned, err := h.collection.Grant(reqCtx, params.UserID, params.ItemID)
	h.record("grant_item", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, OwnedItemResponse{ItemID: owned.ItemID, AcquiredAt: owned.AcquiredAt})
}

type RefreshShopParams struct {
	Day string `binding:"omitempty,datetime=2006-01-02" json:"day"`
}

// RefreshShop POST RouteGroup + AdminShopRefreshRoute. Без day перегенерируется ассортимент текущего дня.
func (h *AdminHandler) RefreshShop(c *gin.Context) {
	var params RefreshShopParams
	// тело необязательно.
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		abortWithBindError(c, bindErr)
		return
	}
	if params.Day == "" {
		params.Day = h.shop.Today()
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	slot, err := h.shop.Refresh(reqCtx, params.Day)
	h.record("shop_refresh", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ShopResponse{Day: slot.Day, Items: slot.Items})
}

type ResetBalancesResponse struct {
	Reset   int       `json:"reset"`
	ResetAt time.Time `json:"reset_at"`
}

// ResetBalances POST RouteGroup + AdminResetBalancesRoute. Обнуляет все балансы с записями в журнале.
func (h *AdminHandler) ResetBalances(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	count, err := h.ledger.ResetAllBalances(reqCtx)
	h.record("reset_balances", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ResetBalancesResponse{Reset: count, ResetAt: time.Now().UTC()})
}
