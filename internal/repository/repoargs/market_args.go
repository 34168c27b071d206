package repoargs

import (
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/google/uuid"
)

type ListingCreate struct {
	SellerID  int64
	ItemID    string
	Price     int64
	CreatedAt time.Time
}

// ListingClose перевод активного лота в конечное состояние.
type ListingClose struct {
	ID       uuid.UUID
	Status   domain.ListingStatus
	BuyerID  *int64
	ClosedAt time.Time
}

// ListingFilter фильтр активных лотов. Нулевые значения полей не ограничивают выборку.
type ListingFilter struct {
	ItemID   string
	SellerID int64
	MaxPrice int64
	Limit    uint
	Offset   uint
}
