package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
)

const maxListingsPage uint = 100

type MarketHandler struct {
	recorder
	market MarketServicer
}

func NewMarketHandler(market MarketServicer, rec OperationRecorder) *MarketHandler {
	return &MarketHandler{recorder: recorder{rec: rec}, market: market}
}

type ListingsQuery struct {
	ItemID   string `binding:"omitempty,item_id"     form:"item_id"`
	SellerID int64  `binding:"omitempty,min=1"       form:"seller_id"`
	MaxPrice int64  `binding:"omitempty,min=1"       form:"max_price"`
	Limit    uint   `binding:"omitempty,min=1"       form:"limit"`
	Offset   uint   `form:"offset"`
}

// Index GET RouteGroup + MarketRoute. Активные лоты, от старых к новым.
func (h *MarketHandler) Index(c *gin.Context) {
	var query ListingsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if query.Limit == 0 || query.Limit > maxListingsPage {
		query.Limit = maxListingsPage
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listings, err := h.market.ListActive(reqCtx, repoargs.ListingFilter{
		ItemID:   query.ItemID,
		SellerID: query.SellerID,
		MaxPrice: query.MaxPrice,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListingResponses(listings))
}

// Mine GET RouteGroup + MyListingsRoute. Все лоты текущего пользователя, включая закрытые.
func (h *MarketHandler) Mine(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listings, err := h.market.ListBySeller(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListingResponses(listings))
}

type CreateListingParams struct {
	ItemID string `binding:"required,item_id" json:"item_id"`
	Price  int64  `json:"price"`
}

// Create POST RouteGroup + MarketRoute. Цену проверяет сервис: неположительная цена - 422.
func (h *MarketHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateListingParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listing, err := h.market.CreateListing(reqCtx, currentUserID, params.ItemID, params.Price)
	h.record("create_listing", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newListingResponse(listing))
}

type MarketBuyResponse struct {
	Listing ListingResponse `json:"listing"`
	Balance int64           `json:"balance"`
}

// Buy POST RouteGroup + MarketBuyRoute.
func (h *MarketHandler) Buy(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	listingID, ok := listingIDParam(c)
	if !ok {
		abortWithServiceError(c, domain.ErrNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.market.Purchase(reqCtx, currentUserID, listingID)
	h.record("marketplace_purchase", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, MarketBuyResponse{Listing: newListingResponse(res.Listing), Balance: res.BuyerBalance})
}

// Remove DELETE RouteGroup + MarketListingRoute.
func (h *MarketHandler) Remove(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	listingID, ok := listingIDParam(c)
	if !ok {
		abortWithServiceError(c, domain.ErrNotFound)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listing, err := h.market.RemoveListing(reqCtx, currentUserID, listingID)
	h.record("remove_listing", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListingResponse(listing))
}

type UpdatePriceParams struct {
	Price int64 `json:"price"`
}

// UpdatePrice PATCH RouteGroup + MarketListingRoute.
func (h *MarketHandler) UpdatePrice(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	listingID, ok := listingIDParam(c)
	if !ok {
		abortWithServiceError(c, domain.ErrNotFound)
		return
	}

	var params UpdatePriceParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	listing, err := h.market.UpdatePrice(reqCtx, currentUserID, listingID, params.Price)
	h.record("update_price", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newListingResponse(listing))
}
