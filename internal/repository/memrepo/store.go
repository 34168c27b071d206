// Package memrepo хранилище в памяти с теми же контрактами, что и pgrepo. Используется в тестах сервисного слоя
// и для локального запуска без базы.
package memrepo

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/google/uuid"
)

type state struct {
	accounts     map[int64]domain.Account
	transactions []domain.Transaction
	owned        []domain.OwnedItem
	nextOwnedID  int64
	catalog      map[string]domain.CatalogItem
	shop         map[string]domain.ShopSlot
	listings     map[uuid.UUID]domain.Listing
	payments     map[string]domain.ExternalPayment
}

func newState() *state {
	return &state{
		accounts: make(map[int64]domain.Account),
		catalog:  make(map[string]domain.CatalogItem),
		shop:     make(map[string]domain.ShopSlot),
		listings: make(map[uuid.UUID]domain.Listing),
		payments: make(map[string]domain.ExternalPayment),
	}
}

func (s *state) clone() *state {
	return &state{
		accounts:     maps.Clone(s.accounts),
		transactions: slices.Clone(s.transactions),
		owned:        slices.Clone(s.owned),
		nextOwnedID:  s.nextOwnedID,
		catalog:      maps.Clone(s.catalog),
		shop:         maps.Clone(s.shop),
		listings:     maps.Clone(s.listings),
		payments:     maps.Clone(s.payments),
	}
}

// db доступ репозитория к состоянию: либо общее хранилище, либо рабочая копия транзакции.
type db interface {
	read(fn func(s *state) error) error
	write(fn func(s *state) error) error
}

// Store общее состояние. txMu сериализует единицы работы и одиночные записи вне транзакций,
// mu защищает указатель на текущее состояние.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	cur  *state
}

func NewStore() *Store {
	return &Store{cur: newState()}
}

func (s *Store) read(fn func(s *state) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.cur)
}

func (s *Store) write(fn func(s *state) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cur)
}

type txState struct {
	st *state
}

func (t *txState) read(fn func(s *state) error) error {
	return fn(t.st)
}

func (t *txState) write(fn func(s *state) error) error {
	return fn(t.st)
}

func notFoundErr(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrRecordNotFound)
}

func duplicateErr(format string, args ...any) error {
	return fmt.Errorf("[memrepo/%s] %w", fmt.Sprintf(format, args...), domain.ErrDuplicateKey)
}
