package service

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/wish-ledger/internal/domain"
	"github.com/fsdevblog/wish-ledger/internal/pricing"
	"github.com/fsdevblog/wish-ledger/internal/repository/memrepo"
	"github.com/fsdevblog/wish-ledger/internal/repository/repoargs"
	"github.com/stretchr/testify/require"
)

// testClock управляемые часы для тестов.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testEnv struct {
	u        *memrepo.UnitOfWork
	clock    *testClock
	services *AppServices
	catalog  []domain.CatalogItem
}

// newTestEnv сервисы поверх хранилища в памяти с заполненным каталогом.
func newTestEnv(t *testing.T, opts Options) *testEnv {
	t.Helper()

	clock := newTestClock()
	opts.Clock = clock.Now
	if opts.Rand == nil {
		opts.Rand = pricing.NewSeededRand(7, 11)
	}

	u := memrepo.New()
	services, err := Factory(u, opts)
	require.NoError(t, err)

	items := fakeCatalog(3)
	require.NoError(t, services.Catalog.Upsert(t.Context(), items))

	return &testEnv{u: u, clock: clock, services: services, catalog: items}
}

// fakeCatalog perTier карточек каждой редкости.
func fakeCatalog(perTier int) []domain.CatalogItem {
	var items []domain.CatalogItem
	for _, r := range domain.Rarities() {
		for i := range perTier {
			items = append(items, domain.CatalogItem{
				ID:       fmt.Sprintf("card_%d_%d", r, i),
				Name:     gofakeit.Name(),
				Rarity:   r,
				Series:   gofakeit.Noun(),
				ImageURL: gofakeit.URL(),
			})
		}
	}
	return items
}

// putShop сохраняет заданный ассортимент дня в обход генерации.
func (e *testEnv) putShop(t *testing.T, slot domain.ShopSlot) {
	t.Helper()
	shop, err := repoOf[ShopRepository](e.u, repoargs.ShopRepoName)
	require.NoError(t, err)
	_, created, createErr := shop.CreateIfAbsent(t.Context(), slot)
	require.NoError(t, createErr)
	require.True(t, created)
}

func (e *testEnv) itemOf(r domain.Rarity) domain.CatalogItem {
	for _, item := range e.catalog {
		if item.Rarity == r {
			return item
		}
	}
	panic("no item of rarity " + r.String())
}

// fund выдает пользователю amount через административное начисление.
func (e *testEnv) fund(t *testing.T, userID int64, amount int64) {
	t.Helper()
	_, err := e.services.Ledger.AdminGrant(t.Context(), userID, amount)
	require.NoError(t, err)
}

func (e *testEnv) balance(t *testing.T, userID int64) int64 {
	t.Helper()
	balance, err := e.services.Ledger.GetBalance(t.Context(), userID)
	require.NoError(t, err)
	return balance
}

func (e *testEnv) requireConsistent(t *testing.T, userIDs ...int64) {
	t.Helper()
	for _, id := range userIDs {
		report, err := e.services.Ledger.Audit(t.Context(), id)
		require.NoError(t, err)
		require.Truef(t, report.Consistent(), "user %d: balance %d, log sum %d", id, report.Balance, report.LogSum)
	}
}

// fixedRand всегда возвращает одно и то же значение, ограниченное n-1.
type fixedRand int

func (r fixedRand) IntN(n int) int {
	return min(int(r), n-1)
}
