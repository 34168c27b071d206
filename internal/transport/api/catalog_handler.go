package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog CatalogServicer
}

func NewCatalogHandler(catalog CatalogServicer) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Index GET RouteGroup + CatalogRoute.
func (h *CatalogHandler) Index(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	items, err := h.catalog.List(reqCtx)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	res := make([]CatalogItemResponse, len(items))
	for i, item := range items {
		res[i] = CatalogItemResponse(item)
	}
	c.JSON(http.StatusOK, res)
}

type CatalogItemParams struct {
	ID       string        `binding:"required,item_id"             json:"id"`
	Name     string        `binding:"required,max_bytes=255"       json:"name"`
	Rarity   domain.Rarity `binding:"required"                     json:"rarity"`
	Series   string        `binding:"omitempty,max_bytes=255"      json:"series"`
	ImageURL string        `binding:"omitempty,url,max_bytes=1024" json:"image_url"`
}

// Upsert PUT RouteGroup + AdminCatalogRoute. Добавляет или обновляет карточки.
func (h *CatalogHandler) Upsert(c *gin.Context) {
	var params []CatalogItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	items := make([]domain.CatalogItem, len(params))
	for i, p := range params {
		items[i] = domain.CatalogItem(p)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.catalog.Upsert(reqCtx, items); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"upserted": len(items)})
}
