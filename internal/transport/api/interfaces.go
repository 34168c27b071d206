package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/google/uuid"
)

type LedgerServicer interface {
	EnsureAccount(ctx context.Context, userID int64) (*domain.Account, error)
	GetBalance(ctx context.Context, userID int64) (int64, error)
	History(ctx context.Context, userID int64, limit uint) ([]domain.Transaction, error)
	Transfer(ctx context.Context, fromID, toID int64, amount int64) (*service.TransferResult, error)
	AdminGrant(ctx context.Context, userID int64, amount int64) (*service.BalanceChange, error)
	CreditExternalPayment(ctx context.Context, args service.PaymentArgs) (*service.BalanceChange, error)
	ResetAllBalances(ctx context.Context) (int, error)
}

type RewardServicer interface {
	CanClaim(ctx context.Context, userID int64, kind domain.ClaimKind, now time.Time) (bool, time.Time, error)
	ClaimDaily(ctx context.Context, userID int64, now time.Time) (*service.ClaimResult, error)
	ClaimBonus(ctx context.Context, userID int64, now time.Time) (*service.ClaimResult, error)
}

type ShopServicer interface {
	Today() string
	GetTodayShop(ctx context.Context, day string) (*domain.ShopSlot, error)
	Refresh(ctx context.Context, day string) (*domain.ShopSlot, error)
	Purchase(ctx context.Context, userID int64, day string, itemID string) (*service.ShopPurchaseResult, error)
}

type MarketServicer interface {
	CreateListing(ctx context.Context, sellerID int64, itemID string, price int64) (*domain.Listing, error)
	ListActive(ctx context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Listing, error)
	Purchase(ctx context.Context, buyerID int64, listingID uuid.UUID) (*service.MarketPurchaseResult, error)
	RemoveListing(ctx context.Context, sellerID int64, listingID uuid.UUID) (*domain.Listing, error)
	UpdatePrice(ctx context.Context, sellerID int64, listingID uuid.UUID, price int64) (*domain.Listing, error)
}

type CollectionServicer interface {
	Grant(ctx context.Context, userID int64, itemID string) (*domain.OwnedItem, error)
	TransferOne(ctx context.Context, fromID, toID int64, itemID string) (*domain.OwnedItem, error)
	ListOwned(ctx context.Context, userID int64) ([]domain.OwnedItem, error)
}

type CatalogServicer interface {
	Upsert(ctx context.Context, items []domain.CatalogItem) error
	List(ctx context.Context) ([]domain.CatalogItem, error)
}

// OperationRecorder учет исходов операций, реализуется пакетом metrics.
type OperationRecorder interface {
	Operation(operation, outcome string)
}
