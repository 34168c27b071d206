// Package pricing описывает ценовую политику: диапазоны цен и веса выпадения редкостей в магазине.
// Пакет не хранит изменяемого состояния, источник случайности передается явно.
package pricing

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/fsdevblog/wish-ledger/internal/domain"
)

var ErrNotPriced = errors.New("rarity has no price range")

// Rand источник случайных чисел. *rand.Rand из math/rand/v2 ему удовлетворяет.
type Rand interface {
	// IntN возвращает число в полуинтервале [0, n). n > 0.
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec
}

// DefaultRand потокобезопасный источник на базе глобального генератора math/rand/v2.
func DefaultRand() Rand {
	return globalRand{}
}

// Range диапазон цены, границы включительно.
type Range struct {
	Min int64
	Max int64
}

type Policy struct {
	ranges  map[domain.Rarity]Range
	weights map[domain.Rarity]int
}

func defaultRanges() map[domain.Rarity]Range {
	return map[domain.Rarity]Range{
		domain.RarityCommon:    {Min: 5, Max: 15},
		domain.RarityUncommon:  {Min: 15, Max: 30},
		domain.RarityRare:      {Min: 30, Max: 60},
		domain.RarityEpic:      {Min: 60, Max: 120},
		domain.RarityLegendary: {Min: 120, Max: 200},
		domain.RarityMythic:    {Min: 50, Max: 100},
		domain.RarityRetro:     {Min: 250, Max: 300},
		domain.RarityZenith:    {Min: 1000, Max: 1200},
	}
}

func defaultWeights() map[domain.Rarity]int {
	return map[domain.Rarity]int{
		domain.RarityCommon:         40,
		domain.RarityUncommon:       25,
		domain.RarityRare:           15,
		domain.RarityEpic:           9,
		domain.RarityLegendary:      5,
		domain.RarityMythic:         3,
		domain.RarityRetro:          2,
		domain.RarityZenith:         1,
		domain.RarityLimitedEdition: 0,
	}
}

// New создает политику с таблицами по умолчанию.
func New() *Policy {
	return &Policy{
		ranges:  defaultRanges(),
		weights: defaultWeights(),
	}
}

// SetRange переопределяет диапазон цены для редкости.
func (p *Policy) SetRange(r domain.Rarity, rng Range) (*Policy, error) {
	if rng.Min <= 0 || rng.Max < rng.Min {
		return p, fmt.Errorf("invalid price range %d..%d for %s", rng.Min, rng.Max, r)
	}
	p.ranges[r] = rng
	return p, nil
}

// SetWeight переопределяет вес выпадения редкости. Отрицательный вес приравнивается к нулю.
func (p *Policy) SetWeight(r domain.Rarity, w int) *Policy {
	p.weights[r] = max(w, 0)
	return p
}

// Override применяет переопределения из конфигурации. Ключи названия редкостей, диапазоны в виде "min-max".
func (p *Policy) Override(weights map[string]int, ranges map[string]string) (*Policy, error) {
	for name, w := range weights {
		r, err := domain.ParseRarity(name)
		if err != nil {
			return p, fmt.Errorf("override weight: %w", err)
		}
		p.SetWeight(r, w)
	}
	for name, raw := range ranges {
		r, err := domain.ParseRarity(name)
		if err != nil {
			return p, fmt.Errorf("override range: %w", err)
		}
		rng, parseErr := ParseRange(raw)
		if parseErr != nil {
			return p, fmt.Errorf("override range for %s: %w", r, parseErr)
		}
		if _, setErr := p.SetRange(r, rng); setErr != nil {
			return p, setErr
		}
	}
	return p, nil
}

// ParseRange разбирает диапазон вида "5-15".
func ParseRange(s string) (Range, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return Range{}, fmt.Errorf("malformed price range %q", s)
	}
	minPrice, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("malformed price range %q: %w", s, err)
	}
	maxPrice, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return Range{}, fmt.Errorf("malformed price range %q: %w", s, err)
	}
	return Range{Min: minPrice, Max: maxPrice}, nil
}

// PriceRange возвращает диапазон цены для редкости. Второе значение false, если редкость не продается.
func (p *Policy) PriceRange(r domain.Rarity) (Range, bool) {
	rng, ok := p.ranges[r]
	return rng, ok
}

// RollPrice равномерно выбирает цену из диапазона редкости, включая обе границы.
func (p *Policy) RollPrice(r domain.Rarity, rnd Rand) (int64, error) {
	rng, ok := p.ranges[r]
	if !ok {
		return 0, fmt.Errorf("roll price for %s: %w", r, ErrNotPriced)
	}
	span := rng.Max - rng.Min + 1
	return rng.Min + int64(rnd.IntN(int(span))), nil
}

func (p *Policy) SelectionWeight(r domain.Rarity) int {
	return p.weights[r]
}

// Table строит таблицу выбора по переданным редкостям. Редкости с нулевым весом в таблицу не попадают.
func (p *Policy) Table(rarities []domain.Rarity) *WeightedTable {
	t := &WeightedTable{}
	for _, r := range rarities {
		t.add(r, p.SelectionWeight(r))
	}
	return t
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand детерминированный потокобезопасный источник.
func NewSeededRand(seed1, seed2 uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))} //nolint:gosec
}
