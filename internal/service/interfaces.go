package service

import (
	"context"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type AccountRepository interface {
	// Create возвращает domain.ErrDuplicateKey, если счет уже существует.
	Create(ctx context.Context, args repoargs.AccountCreate) (*domain.Account, error)
	Find(ctx context.Context, userID int64) (*domain.Account, error)
	// FindForUpdate блокирует строки счетов до конца транзакции в порядке возрастания userID.
	// Отсутствующие счета в результат не попадают.
	FindForUpdate(ctx context.Context, userIDs ...int64) ([]domain.Account, error)
	FindAllForUpdate(ctx context.Context) ([]domain.Account, error)
	UpdateBalance(ctx context.Context, userID int64, balance int64, at time.Time) error
	StampClaim(ctx context.Context, userID int64, kind domain.ClaimKind, at time.Time) error
}

type TransactionRepository interface {
	BatchCreate(ctx context.Context, transactions []repoargs.TransactionCreate, fn repoargs.BatchExecQueryRow)
	// ListByUser возвращает записи от новых к старым.
	ListByUser(ctx context.Context, userID int64, limit uint) ([]domain.Transaction, error)
	SumByUser(ctx context.Context, userID int64) (int64, error)
}

type OwnershipRepository interface {
	Grant(ctx context.Context, userID int64, itemID string, at time.Time) (*domain.OwnedItem, error)
	// RevokeOne удаляет одну единицу. domain.ErrRecordNotFound, если удалять нечего.
	RevokeOne(ctx context.Context, userID int64, itemID string) error
	// MoveOne передает одну единицу от fromID к toID. domain.ErrRecordNotFound, если у fromID её нет.
	MoveOne(ctx context.Context, fromID, toID int64, itemID string, at time.Time) (*domain.OwnedItem, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.OwnedItem, error)
	Count(ctx context.Context, userID int64, itemID string) (int64, error)
}

type CatalogRepository interface {
	Upsert(ctx context.Context, items []domain.CatalogItem, fn repoargs.BatchExecQueryRow)
	Find(ctx context.Context, id string) (*domain.CatalogItem, error)
	ListAll(ctx context.Context) ([]domain.CatalogItem, error)
}

type ShopRepository interface {
	Find(ctx context.Context, day string) (*domain.ShopSlot, error)
	// CreateIfAbsent сохраняет ассортимент, если на этот день его еще нет. Возвращает сохраненный ассортимент
	// (свой или ранее записанный) и признак того, что запись сделана этим вызовом.
	CreateIfAbsent(ctx context.Context, slot domain.ShopSlot) (*domain.ShopSlot, bool, error)
	Delete(ctx context.Context, day string) error
}

type ListingRepository interface {
	// Create возвращает domain.ErrDuplicateKey, если у продавца уже есть активный лот на эту карточку.
	Create(ctx context.Context, args repoargs.ListingCreate) (*domain.Listing, error)
	Find(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*domain.Listing, error)
	FindActive(ctx context.Context, sellerID int64, itemID string) (*domain.Listing, error)
	ListActive(ctx context.Context, filter repoargs.ListingFilter) ([]domain.Listing, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]domain.Listing, error)
	// Close и UpdatePrice меняют только активный лот, иначе domain.ErrRecordNotFound.
	Close(ctx context.Context, args repoargs.ListingClose) (*domain.Listing, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price int64, at time.Time) (*domain.Listing, error)
	CountActive(ctx context.Context, sellerID int64, itemID string) (int64, error)
}

type PaymentRepository interface {
	// Create возвращает domain.ErrDuplicateKey для уже сохраненного PaymentID.
	Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.ExternalPayment, error)
	Find(ctx context.Context, paymentID string) (*domain.ExternalPayment, error)
}
