package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	recorder
	shop ShopServicer
}

func NewShopHandler(shop ShopServicer, rec OperationRecorder) *ShopHandler {
	return &ShopHandler{recorder: recorder{rec: rec}, shop: shop}
}

type ShopResponse struct {
	Day   string            `json:"day"`
	Items []domain.ShopItem `json:"items"`
}

// Index GET RouteGroup + ShopRoute. Ассортимент текущего дня, генерируется при первом запросе.
func (h *ShopHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	slot, err := h.shop.GetTodayShop(reqCtx, h.shop.Today())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ShopResponse{Day: slot.Day, Items: slot.Items})
}

type ShopBuyParams struct {
	ItemID string `binding:"required,item_id" json:"item_id"`
}

type ShopBuyResponse struct {
	Item    domain.ShopItem `json:"item"`
	Balance int64           `json:"balance"`
}

// Buy POST RouteGroup + ShopBuyRoute. Покупка по цене текущего дня.
func (h *ShopHandler) Buy(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params ShopBuyParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.shop.Purchase(reqCtx, currentUserID, h.shop.Today(), params.ItemID)
	h.record("shop_purchase", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ShopBuyResponse{Item: res.Item, Balance: res.Balance})
}
