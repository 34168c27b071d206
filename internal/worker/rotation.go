// Package worker фоновые задачи по расписанию.
package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRotationSpec   = "0 0 * * *"
	defaultServiceTimeout = 10 * time.Second
)

// ShopRotation заранее генерирует ассортимент магазина на наступивший день. Генерация идемпотентна, поэтому
// запуск на нескольких экземплярах приложения безопасен.
type ShopRotation struct {
	svs      ShopServicer
	l        *logrus.Entry
	spec     string
	timeout  time.Duration
	clock    func() time.Time
	recorder RotationRecorder
}

func NewShopRotation(svs ShopServicer, l *logrus.Logger) *ShopRotation {
	loggerEntry := l.WithFields(logrus.Fields{
		"component": "worker",
		"module":    "shop-rotation",
	})

	return &ShopRotation{
		svs:     svs,
		l:       loggerEntry,
		spec:    DefaultRotationSpec,
		timeout: defaultServiceTimeout,
		clock:   func() time.Time { return time.Now().UTC() },
	}
}

// SetSpec расписание в формате cron (5 полей, UTC).
func (r *ShopRotation) SetSpec(spec string) *ShopRotation {
	if spec != "" {
		r.spec = spec
	}
	return r
}

func (r *ShopRotation) SetTimeout(timeout time.Duration) *ShopRotation {
	r.timeout = timeout
	return r
}

func (r *ShopRotation) SetClock(clock func() time.Time) *ShopRotation {
	r.clock = clock
	return r
}

func (r *ShopRotation) SetRecorder(recorder RotationRecorder) *ShopRotation {
	r.recorder = recorder
	return r
}

// Run сразу генерирует ассортимент текущего дня, затем запускает планировщик и блокируется до отмены контекста.
// Ошибка возвращается только при неверном расписании.
func (r *ShopRotation) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(r.spec, func() { _ = r.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("shop rotation spec %q: %w", r.spec, err)
	}

	r.l.WithField("spec", r.spec).Info("Starting")
	_ = r.RunOnce(ctx)

	c.Start()
	<-ctx.Done()

	r.l.Info("Got stop signal, exiting...")
	<-c.Stop().Done()
	return nil
}

// RunOnce генерирует (или получает уже сохраненный) ассортимент на текущий день.
func (r *ShopRotation) RunOnce(ctx context.Context) error {
	day := service.Day(r.clock())

	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	slot, err := r.svs.GetTodayShop(reqCtx, day)
	if r.recorder != nil {
		r.recorder.Rotation(err)
	}
	if err != nil {
		r.l.WithError(err).WithField("day", day).Error("shop rotation")
		return fmt.Errorf("shop rotation for %s: %w", day, err)
	}

	r.l.WithFields(logrus.Fields{
		"day":   day,
		"items": len(slot.Items),
	}).Info("Shop ready")
	return nil
}
