package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"mvmall/internal/app/config"
	"mvmall/internal/app/domains/repo/rpcommission"
	"mvmall/internal/app/domains/services/svsettlement"
	"mvmall/internal/app/infra/mq/lmstfy"
	"mvmall/internal/app/infra/persistence/mysql"
	"mvmall/internal/app/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	// 2. 初始化依赖
	zlog, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := mysql.Open(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to open mysql: %v", err)
	}
	defer func() { _ = mysql.Close(db) }()

	service := svsettlement.NewSettlementService(rpcommission.NewCommissionRepository(db), zlog)
	consumer := lmstfy.NewSettlementConsumer(
		lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token),
		cfg.Lmstfy.SettlementQueue,
		service,
		zlog,
	)

	// 3. 消费循环，收到 SIGINT/SIGTERM 退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting settlement worker, queue=%s", cfg.Lmstfy.SettlementQueue)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Settlement worker error: %v", err)
	}
	log.Println("Settlement worker stopped")
}
