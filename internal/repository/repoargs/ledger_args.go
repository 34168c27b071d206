package repoargs

import (
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionCreate struct {
	UserID      int64
	Amount      int64
	Category    domain.TransactionCategory
	Description string
	CreatedAt   time.Time
}

type AccountCreate struct {
	UserID    int64
	Balance   int64
	CreatedAt time.Time
}

type PaymentCreate struct {
	PaymentID string
	UserID    int64
	Units     int64
	Amount    decimal.Decimal
	Currency  string
	CreatedAt time.Time
}
