package api

import (
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
)

type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func newTransactionResponses(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		res[i] = TransactionResponse{
			ID:          t.ID.String(),
			Amount:      t.Amount,
			Category:    string(t.Category),
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		}
	}
	return res
}

type ListingResponse struct {
	ID        string     `json:"id"`
	SellerID  int64      `json:"seller_id"`
	ItemID    string     `json:"item_id"`
	Price     int64      `json:"price"`
	Status    string     `json:"status"`
	BuyerID   *int64     `json:"buyer_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

func newListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:        l.ID.String(),
		SellerID:  l.SellerID,
		ItemID:    l.ItemID,
		Price:     l.Price,
		Status:    string(l.Status),
		BuyerID:   l.BuyerID,
		CreatedAt: l.CreatedAt,
		ClosedAt:  l.ClosedAt,
	}
}

func newListingResponses(listings []domain.Listing) []ListingResponse {
	res := make([]ListingResponse, len(listings))
	for i := range listings {
		res[i] = newListingResponse(&listings[i])
	}
	return res
}

type OwnedItemResponse struct {
	ItemID     string    `json:"item_id"`
	AcquiredAt time.Time `json:"acquired_at"`
}

type CatalogItemResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Rarity   domain.Rarity `json:"rarity"`
	Series   string        `json:"series,omitempty"`
	ImageURL string        `json:"image_url,omitempty"`
}
