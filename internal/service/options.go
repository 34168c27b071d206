package service

import (
	"time"

	"github.com/fsdevblog/wish-ledger/internal/pricing"
)

type ShopMode string

const (
	// ShopModeWeighted N позиций, редкость каждой выбирается пропорционально весу.
	ShopModeWeighted ShopMode = "weighted"
	// ShopModePerTier по одной случайной карточке каждой продаваемой редкости.
	ShopModePerTier ShopMode = "per-tier"
)

const (
	defaultDailyReward  int64 = 10
	defaultBonusMin     int64 = 1
	defaultBonusMax     int64 = 6
	defaultShopSlots          = 9
	defaultHistoryLimit uint  = 10
	rewardCooldown            = 24 * time.Hour
)

// Options общие настройки сервисов. Нулевые значения заменяются значениями по умолчанию.
type Options struct {
	StartingBalance      int64
	DailyReward          int64
	BonusMin             int64
	BonusMax             int64
	SharedRewardCooldown bool
	ShopSlots            int
	ShopMode             ShopMode
	HistoryLimit         uint
	Clock                func() time.Time
	Rand                 pricing.Rand
	Policy               *pricing.Policy
}

func (o Options) withDefaults() Options {
	if o.DailyReward <= 0 {
		o.DailyReward = defaultDailyReward
	}
	if o.BonusMin <= 0 {
		o.BonusMin = defaultBonusMin
	}
	if o.BonusMax < o.BonusMin {
		o.BonusMax = max(defaultBonusMax, o.BonusMin)
	}
	if o.ShopSlots <= 0 {
		o.ShopSlots = defaultShopSlots
	}
	if o.ShopMode == "" {
		o.ShopMode = ShopModeWeighted
	}
	if o.HistoryLimit == 0 {
		o.HistoryLimit = defaultHistoryLimit
	}
	if o.Clock == nil {
		o.Clock = func() time.Time { return time.Now().UTC() }
	}
	if o.Rand == nil {
		o.Rand = pricing.DefaultRand()
	}
	if o.Policy == nil {
		o.Policy = pricing.New()
	}
	if o.StartingBalance < 0 {
		o.StartingBalance = 0
	}
	return o
}

// Day календарный день (UTC) в формате ключа ассортимента магазина.
func Day(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
