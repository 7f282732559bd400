package main

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/config"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdnotify"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rprequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/fees"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/location"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/mq/lmstfy"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/mysql"
	redisx "github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/redis"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/auth"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/account"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/locationproxy"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/order"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/settlement"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/handlers/shippingrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/routers"
)

// App 应用实例
type App struct {
	Engine *gin.Engine
	Logger logger.Logger
}

// InitializeApp 装配应用（Repo → Module → Service → Handler → Router）
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	// 基础设施
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}

	pubsubClient, err := redisx.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		mysql.Close(db)
		return nil, nil, err
	}

	cache := redisx.NewCache(pubsubClient.Raw(), cfg.Location.CacheTTL)

	lmstfyClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	locationClient := location.NewClient(cfg.Location.BaseURL, cache)
	feesClient := fees.NewClient(cfg.Fees.BaseURL)
	tokenIssuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Repo 层
	accountRepo := rpaccount.NewAccountRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	requestRepo := rprequest.NewRequestRepository(db)
	settleRepo := rpsettle.NewSettleRepository(db)

	// Module 层
	accountModule := mdaccount.NewAccountModule(accountRepo)
	orderModule := mdorder.NewOrderModule(orderRepo, accountRepo)
	requestModule := mdrequest.NewRequestModule(requestRepo)
	settleModule := mdsettle.NewSettleModule(settleRepo)
	notifyModule := mdnotify.NewNotifyModule(lmstfyClient, pubsubClient, cfg.Lmstfy.Queue)

	// Service 层
	accountService := svaccount.NewAccountService(accountModule, tokenIssuer)
	orderService := svorder.NewOrderService(orderModule, feesClient, notifyModule, log)
	requestService := svrequest.NewRequestService(requestModule, orderModule)
	settleService := svsettle.NewSettleService(settleModule, orderModule, notifyModule, log)

	// Handler 层
	accountHandler := account.NewAccountHandler(accountService, notifyModule, log)
	orderHandler := order.NewOrderHandler(orderService, locationClient, log)
	requestHandler := shippingrequest.NewRequestHandler(requestService, log)
	settlementHandler := settlement.NewSettlementHandler(settleService, log)
	locationHandler := locationproxy.NewLocationHandler(locationClient, log)

	engine := routers.SetupRoutes(tokenIssuer, log, orderHandler, accountHandler, requestHandler, settlementHandler, locationHandler)

	cleanup := func() {
		mysql.Close(db)
		pubsubClient.Close()
		log.Sync()
	}

	return &App{Engine: engine, Logger: log}, cleanup, nil
}
