package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/catalog"
	"github.com/fsdevblog/wish-ledger/internal/config"
	"github.com/fsdevblog/wish-ledger/internal/metrics"
	"github.com/fsdevblog/wish-ledger/internal/pricing"
	"github.com/fsdevblog/wish-ledger/internal/repository/memrepo"
	"github.com/fsdevblog/wish-ledger/internal/repository/pgrepo"
	"github.com/fsdevblog/wish-ledger/internal/service"
	"github.com/fsdevblog/wish-ledger/internal/transport/api"
	"github.com/fsdevblog/wish-ledger/internal/worker"
	"github.com/fsdevblog/wish-ledger/pkg/uow"
	"github.com/sirupsen/logrus"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.WithFields(logrus.Fields{
		"address": a.Config.RunAddress,
		"storage": a.Config.Storage,
	}).Info("Starting app")

	unitOfWork, closeStorage, storageErr := a.initStorage(notifyCtx)
	if storageErr != nil {
		return fmt.Errorf("app run: %w", storageErr)
	}
	defer closeStorage()

	opts, optsErr := a.serviceOptions()
	if optsErr != nil {
		return fmt.Errorf("app run: %w", optsErr)
	}
	services, sErr := service.Factory(unitOfWork, opts)
	if sErr != nil {
		return fmt.Errorf("app run: %w", sErr)
	}

	if err := a.seedCatalog(notifyCtx, services.Catalog); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	m := metrics.New()
	router, routerErr := api.New(api.RouterArgs{
		Logger:       a.Logger,
		Ledger:       services.Ledger,
		Rewards:      services.Reward,
		Shop:         services.Shop,
		Market:       services.Market,
		Collection:   services.Collection,
		Catalog:      services.Catalog,
		Metrics:      m,
		JWTSecretKey: []byte(a.Config.JWTSecret),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %w", routerErr)
	}

	server := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second, //nolint:mnd
	}

	errChan := make(chan error, 2) //nolint:mnd

	go func() {
		if runErr := server.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	rotation := worker.NewShopRotation(services.Shop, a.Logger).
		SetSpec(a.Config.ShopRotationCron).
		SetRecorder(m)

	go func() {
		if runErr := rotation.Run(notifyCtx); runErr != nil {
			errChan <- fmt.Errorf("shop rotation: %w", runErr)
		}
	}()

	var runErr error
	select {
	case <-notifyCtx.Done():
		runErr = notifyCtx.Err()
	case runErr = <-errChan:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.WithError(err).Error("http server shutdown")
	}
	return runErr
}

// initStorage выбирает хранилище по конфигу. Возвращаемая функция освобождает ресурсы хранилища.
func (a *App) initStorage(ctx context.Context) (uow.UOW, func(), error) {
	if a.Config.Storage == config.StorageMemory {
		a.Logger.Warn("using in-memory storage, state is lost on restart")
		return memrepo.New(), func() {}, nil
	}

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return nil, nil, connErr
	}

	unitOfWork := uow.NewUnitOfWork(conn)
	if err := pgrepo.Register(unitOfWork); err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("init UOW: %w", err)
	}
	return unitOfWork, conn.Close, nil
}

func (a *App) serviceOptions() (service.Options, error) {
	policy, err := pricing.New().Override(a.Config.ShopWeights, a.Config.ShopPrices)
	if err != nil {
		return service.Options{}, fmt.Errorf("pricing policy: %w", err)
	}
	return service.Options{
		StartingBalance:      a.Config.StartingBalance,
		DailyReward:          a.Config.DailyReward,
		BonusMin:             a.Config.BonusMin,
		BonusMax:             a.Config.BonusMax,
		SharedRewardCooldown: a.Config.SharedRewardCooldown,
		ShopSlots:            a.Config.ShopSlots,
		ShopMode:             service.ShopMode(a.Config.ShopMode),
		HistoryLimit:         a.Config.HistoryLimit,
		Policy:               policy,
	}, nil
}

// seedCatalog загружает карточки из файла каталога, если он задан. Повторная загрузка обновляет записи.
func (a *App) seedCatalog(ctx context.Context, svs *service.CatalogService) error {
	if a.Config.CatalogFile == "" {
		return nil
	}
	items, err := catalog.LoadFile(a.Config.CatalogFile)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if upsertErr := svs.Upsert(ctx, items); upsertErr != nil {
		return fmt.Errorf("seed catalog: %w", upsertErr)
	}
	a.Logger.WithField("items", len(items)).Info("catalog loaded")
	return nil
}
