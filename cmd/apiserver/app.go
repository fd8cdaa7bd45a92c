package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"mvmall/internal/app/config"
	"mvmall/internal/app/domains/modules/mdintake"
	"mvmall/internal/app/domains/repo/rpcommission"
	"mvmall/internal/app/domains/repo/rporder"
	"mvmall/internal/app/domains/repo/rporderitem"
	"mvmall/internal/app/domains/repo/rpproduct"
	"mvmall/internal/app/domains/repo/rpstore"
	"mvmall/internal/app/domains/repo/rpstoreorder"
	"mvmall/internal/app/domains/services/svcheckout"
	"mvmall/internal/app/domains/services/svquery"
	"mvmall/internal/app/infra/mq/lmstfy"
	"mvmall/internal/app/infra/persistence/mysql"
	"mvmall/internal/app/infra/persistence/redis"
	"mvmall/internal/app/pkg/logger"
	"mvmall/internal/app/pkg/ordernum"
	orderhandler "mvmall/internal/app/server/handlers/order"
	storehandler "mvmall/internal/app/server/handlers/store"
	"mvmall/internal/app/server/routers"
)

// App 已装配的应用
type App struct {
	Engine *gin.Engine
}

// initializeApp 按依赖顺序装配全部组件，返回应用与清理函数
func initializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger failed: %w", err)
	}

	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open mysql failed: %w", err)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		return nil, nil, fmt.Errorf("migrate schema failed: %w", err)
	}

	announcer, err := redis.NewOrderAnnouncer(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.OrderCreatedChannel)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis announcer failed: %w", err)
	}

	settlement := lmstfy.NewSettlementProducer(
		lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token),
		cfg.Lmstfy.SettlementQueue,
	)

	// 仓储层
	parentRepo := rporder.NewParentOrderRepository(db)
	storeOrderRepo := rpstoreorder.NewStoreOrderRepository(db)
	itemRepo := rporderitem.NewOrderItemRepository(db)
	commissionRepo := rpcommission.NewCommissionRepository(db)
	productLookup := rpproduct.NewProductLookup(db)
	storeLookup := rpstore.NewStoreLookup(db)

	// 服务层
	checkoutService := svcheckout.NewCheckoutService(
		mdintake.NewGrouper(productLookup),
		storeLookup,
		ordernum.NewSnowflakeAllocator(cfg.App.MachineID),
		mysql.NewTxManager(db),
		parentRepo,
		storeOrderRepo,
		itemRepo,
		commissionRepo,
		announcer,
		settlement,
		log,
	)
	queryService := svquery.NewQueryService(parentRepo, storeOrderRepo, itemRepo, storeLookup)

	// HTTP 层
	engine := routers.SetupRoutes(
		orderhandler.NewOrderHandler(checkoutService, queryService),
		storehandler.NewStoreHandler(queryService),
		log,
	)

	cleanup := func() {
		_ = announcer.Close()
		_ = mysql.Close(db)
		_ = log.Sync()
	}

	return &App{Engine: engine}, cleanup, nil
}
