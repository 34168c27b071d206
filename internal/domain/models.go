package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	UserID         int64
	Balance        int64
	LastDailyClaim *time.Time
	LastBonusClaim *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// LastClaim возвращает отметку последнего получения награды указанного типа.
func (a *Account) LastClaim(kind ClaimKind) *time.Time {
	if kind == ClaimBonus {
		return a.LastBonusClaim
	}
	return a.LastDailyClaim
}

// Transaction неизменяемая запись журнала операций по счету. Сумма со знаком.
type Transaction struct {
	ID          uuid.UUID
	UserID      int64
	Amount      int64
	Category    TransactionCategory
	Description string
	CreatedAt   time.Time
}

type CatalogItem struct {
	ID       string
	Name     string
	Rarity   Rarity
	Series   string
	ImageURL string
}

type OwnedItem struct {
	ID         int64
	UserID     int64
	ItemID     string
	AcquiredAt time.Time
}

type ShopItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name"`
	Rarity   Rarity `json:"rarity"`
	Series   string `json:"series"`
	ImageURL string `json:"image_url"`
	Price    int64  `json:"price"`
}

// ShopSlot ассортимент магазина на календарный день (UTC).
type ShopSlot struct {
	Day         string
	Items       []ShopItem
	GeneratedAt time.Time
}

// Find ищет позицию магазина по id карточки.
func (s *ShopSlot) Find(itemID string) (ShopItem, bool) {
	for _, item := range s.Items {
		if item.ItemID == itemID {
			return item, true
		}
	}
	return ShopItem{}, false
}

type Listing struct {
	ID        uuid.UUID
	SellerID  int64
	ItemID    string
	Price     int64
	Status    ListingStatus
	BuyerID   *int64
	CreatedAt time.Time
	UpdatedAt time.Time
	ClosedAt  *time.Time
}

func (l *Listing) IsActive() bool {
	return l.Status == ListingStatusActive
}

// ExternalPayment факт зачисления по внешнему платежу. PaymentID уникален.
type ExternalPayment struct {
	PaymentID string
	UserID    int64
	Units     int64
	Amount    decimal.Decimal
	Currency  string
	CreatedAt time.Time
}
