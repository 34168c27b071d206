package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	recorder
	collection CollectionServicer
}

func NewCollectionHandler(collection CollectionServicer, rec OperationRecorder) *CollectionHandler {
	return &CollectionHandler{recorder: recorder{rec: rec}, collection: collection}
}

// Index GET RouteGroup + CollectionRoute.
func (h *CollectionHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	owned, err := h.collection.ListOwned(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	res := make([]OwnedItemResponse, len(owned))
	for i, item := range owned {
		res[i] = OwnedItemResponse{ItemID: item.ItemID, AcquiredAt: item.AcquiredAt}
	}
	c.JSON(http.StatusOK, res)
}

type GiftParams struct {
	To     int64  `binding:"required"         json:"to"`
	ItemID string `binding:"required,item_id" json:"item_id"`
}

// Gift POST RouteGroup + GiftRoute. Передача одной свободной карточки другому пользователю.
func (h *CollectionHandler) Gift(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params GiftParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, err := h.collection.TransferOne(reqCtx, currentUserID, params.To, params.ItemID)
	h.record("transfer_one", err)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
