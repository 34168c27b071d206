package pricing

import (
	"sort"

	"github.com/fsdevblog/wish-ledger/internal/domain"
)

// WeightedTable таблица накопленных весов. Выбор - одно равномерное число в [0, total) и бинарный поиск.
type WeightedTable struct {
	tiers      []domain.Rarity
	cumulative []int
	total      int
}

func (t *WeightedTable) add(r domain.Rarity, weight int) {
	if weight <= 0 {
		return
	}
	t.total += weight
	t.tiers = append(t.tiers, r)
	t.cumulative = append(t.cumulative, t.total)
}

func (t *WeightedTable) Len() int {
	return len(t.tiers)
}

func (t *WeightedTable) Total() int {
	return t.total
}

// Pick выбирает редкость пропорционально весу. false, если таблица пуста.
func (t *WeightedTable) Pick(rnd Rand) (domain.Rarity, bool) {
	if t.total == 0 {
		return 0, false
	}
	n := rnd.IntN(t.total)
	// первый индекс, чей накопленный вес строго больше n.
	i := sort.SearchInts(t.cumulative, n+1)
	return t.tiers[i], true
}

// Without возвращает копию таблицы без указанной редкости.
func (t *WeightedTable) Without(r domain.Rarity) *WeightedTable {
	res := &WeightedTable{}
	prev := 0
	for i, tier := range t.tiers {
		w := t.cumulative[i] - prev
		prev = t.cumulative[i]
		if tier == r {
			continue
		}
		res.add(tier, w)
	}
	return res
}
