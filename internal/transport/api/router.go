package api

import (
	"fmt"
	"time"

	"github.com/fsdevblog/wish-ledger/internal/metrics"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/middlewares"
	"github.com/fsdevblog/wish-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	MetricsRoute = "/metrics"
	RouteGroup   = "/api"

	BalanceRoute     = "/balance"
	HistoryRoute     = "/history"
	TransferRoute    = "/transfer"
	RewardsRoute     = "/rewards"
	DailyRewardRoute = "/rewards/daily"
	BonusRewardRoute = "/rewards/bonus"

	ShopRoute    = "/shop"
	ShopBuyRoute = "/shop/buy"

	MarketRoute        = "/market"
	MyListingsRoute    = "/market/mine"
	MarketListingRoute = "/market/:id"
	MarketBuyRoute     = "/market/:id/buy"

	CollectionRoute = "/collection"
	GiftRoute       = "/collection/gift"
	CatalogRoute    = "/catalog"

	AdminGroup              = "/admin"
	AdminGrantRoute         = "/grant"
	AdminGrantItemRoute     = "/grant-item"
	AdminShopRefreshRoute   = "/shop/refresh"
	AdminResetBalancesRoute = "/reset-balances"
	AdminCatalogRoute       = "/catalog"

	PaymentsRoute = "/payments"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	Ledger       LedgerServicer
	Rewards      RewardServicer
	Shop         ShopServicer
	Market       MarketServicer
	Collection   CollectionServicer
	Catalog      CatalogServicer
	Metrics      *metrics.Metrics
	JWTSecretKey []byte
	Clock        func() time.Time
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("new router: %w", err)
	}
	if args.Clock == nil {
		args.Clock = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}

	var rec OperationRecorder
	if args.Metrics != nil {
		rec = args.Metrics
		r.Use(args.Metrics.Middleware())
		r.GET(MetricsRoute, gin.WrapH(args.Metrics.Handler()))
	}
	r.Use(middlewares.Errors())

	accountHandler := NewAccountHandler(args.Ledger, rec)
	rewardsHandler := NewRewardsHandler(args.Rewards, rec, args.Clock)
	shopHandler := NewShopHandler(args.Shop, rec)
	marketHandler := NewMarketHandler(args.Market, rec)
	collectionHandler := NewCollectionHandler(args.Collection, rec)
	catalogHandler := NewCatalogHandler(args.Catalog)
	adminHandler := NewAdminHandler(args.Ledger, args.Collection, args.Shop, rec)
	paymentsHandler := NewPaymentsHandler(args.Ledger, rec)

	api := r.Group(RouteGroup)
	// ниже все роуты группы требуют авторизованного пользователя.
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))

	api.GET(CatalogRoute, catalogHandler.Index)

	// счет пользователя создается при первом запросе к его роутам.
	user := api.Group("", middlewares.EnsureAccount(args.Ledger))
	user.GET(BalanceRoute, accountHandler.Balance)
	user.GET(HistoryRoute, accountHandler.History)
	user.POST(TransferRoute, accountHandler.Transfer)

	user.GET(RewardsRoute, rewardsHandler.Status)
	user.POST(DailyRewardRoute, rewardsHandler.Daily)
	user.POST(BonusRewardRoute, rewardsHandler.Bonus)

	user.GET(ShopRoute, shopHandler.Index)
	user.POST(ShopBuyRoute, shopHandler.Buy)

	user.GET(MarketRoute, marketHandler.Index)
	user.POST(MarketRoute, marketHandler.Create)
	user.GET(MyListingsRoute, marketHandler.Mine)
	user.PATCH(MarketListingRoute, marketHandler.UpdatePrice)
	user.DELETE(MarketListingRoute, marketHandler.Remove)
	user.POST(MarketBuyRoute, marketHandler.Buy)

	user.GET(CollectionRoute, collectionHandler.Index)
	user.POST(GiftRoute, collectionHandler.Gift)

	admin := api.Group(AdminGroup, middlewares.RoleRequired(tokens.RoleAdmin))
	admin.POST(AdminGrantRoute, adminHandler.Grant)
	admin.POST(AdminGrantItemRoute, adminHandler.GrantItem)
	admin.POST(AdminShopRefreshRoute, adminHandler.RefreshShop)
	admin.POST(AdminResetBalancesRoute, adminHandler.ResetBalances)
	admin.PUT(AdminCatalogRoute, catalogHandler.Upsert)

	api.POST(PaymentsRoute, middlewares.RoleRequired(tokens.RolePayments, tokens.RoleAdmin), paymentsHandler.Credit)
	return r, nil
}
