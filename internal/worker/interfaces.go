package worker

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/wish-ledger/internal/domain"
)

type ShopServicer interface {
	GetTodayShop(ctx context.Context, day string) (*domain.ShopSlot, error)
}

// RotationRecorder учет запусков ротации в метриках.
type RotationRecorder interface {
	Rotation(err error)
}
