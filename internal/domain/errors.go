package domain

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки слоя хранения.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")
)

// Бизнес ошибки. Каждая операция сервисного слоя возвращает не более одной из них.
var (
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrInvalidPrice             = fmt.Errorf("invalid price: %w", ErrInvalidAmount)
	ErrInvalidTransfer          = errors.New("invalid transfer")
	// ErrTransferAmount неположительная сумма перевода: одновременно InvalidTransfer и InvalidAmount.
	ErrTransferAmount = fmt.Errorf("%w: %w", ErrInvalidTransfer, ErrInvalidAmount)
	ErrNotOwned                 = errors.New("item not owned")
	ErrAlreadyListed            = errors.New("item already listed")
	ErrNotFound                 = errors.New("not found")
	ErrAccountNotFound          = fmt.Errorf("account %w", ErrNotFound)
	ErrItemNotFound             = fmt.Errorf("catalog item %w", ErrNotFound)
	ErrNotOwner                 = errors.New("not the listing owner")
	ErrSelfPurchase             = errors.New("cannot buy own listing")
	ErrAlreadyClaimed           = errors.New("reward already claimed")
	ErrCardNotInShop            = errors.New("card is not in the shop")
	ErrOwnershipInconsistency   = errors.New("ownership inconsistency")
	ErrExternalPaymentDuplicate = errors.New("external payment already credited")
	ErrItemListed               = errors.New("item is reserved by an active listing")
	ErrEmptyCatalog             = errors.New("catalog has no items for sale")
)

// ClaimCooldownError награда уже получена, следующая попытка возможна не ранее NextClaimAt.
type ClaimCooldownError struct {
	Kind        ClaimKind
	NextClaimAt time.Time
}

func NewClaimCooldownError(kind ClaimKind, next time.Time) error {
	return &ClaimCooldownError{Kind: kind, NextClaimAt: next}
}

func (e *ClaimCooldownError) Error() string {
	return fmt.Sprintf("%s reward already claimed, next claim at %s", e.Kind, e.NextClaimAt.Format(time.RFC3339))
}

func (e *ClaimCooldownError) Unwrap() error {
	return ErrAlreadyClaimed
}

// DuplicatePaymentError платеж с таким id уже зачислен. Payment содержит ранее сохраненную запись.
type DuplicatePaymentError struct {
	Payment *ExternalPayment
}

func NewDuplicatePaymentError(payment *ExternalPayment) error {
	return &DuplicatePaymentError{Payment: payment}
}

func (e *DuplicatePaymentError) Error() string {
	return fmt.Sprintf(
		"payment %s already credited to user with id %d",
		e.Payment.PaymentID,
		e.Payment.UserID,
	)
}

func (e *DuplicatePaymentError) Unwrap() error {
	return ErrExternalPaymentDuplicate
}
