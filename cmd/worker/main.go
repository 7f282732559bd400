package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdnotify"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svsettle"
	applmstfy "github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/mq/lmstfy"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/mysql"
	redisx "github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/redis"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/config"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/domains"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/domains/handlers/fanout"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/domains/handlers/settle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/lmstfy"
)

var (
	configPath = flag.String("config", "./config/worker.yaml", "配置文件路径")
)

func main() {
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Config validation failed: %v", err)
	}

	log.Printf("Config loaded: %s, env: %s, log_level: %s\n", cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)

	// 2. 初始化 Logger
	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Sync()

	// 3. 初始化基础设施
	db, err := mysql.NewDB(cfg.MySQL.DSN)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	defer mysql.Close(db)

	pubsubClient, err := redisx.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect redis: %v", err)
	}
	defer pubsubClient.Close()

	// 消费端走官方客户端，通知发布端走 HTTP 封装
	lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
	if err != nil {
		log.Fatalf("Failed to create lmstfy client: %v", err)
	}

	publishHost := fmt.Sprintf("http://%s:%d", cfg.Lmstfy.Host, cfg.Lmstfy.Port)
	publishClient := applmstfy.NewClient(publishHost, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	// 4. 装配业务依赖
	accountRepo := rpaccount.NewAccountRepository(db)
	orderRepo := rporder.NewOrderRepository(db)
	settleRepo := rpsettle.NewSettleRepository(db)

	orderModule := mdorder.NewOrderModule(orderRepo, accountRepo)
	settleModule := mdsettle.NewSettleModule(settleRepo)

	var queueName string
	if len(cfg.Workers) > 0 {
		queueName = cfg.Workers[0].QueueName
	}
	notifyModule := mdnotify.NewNotifyModule(publishClient, pubsubClient, queueName)

	settleService := svsettle.NewSettleService(settleModule, orderModule, notifyModule, zapLogger)

	deps := &domains.Deps{
		SettleHandler: settle.NewHandler(settleService, notifyModule, zapLogger),
		FanoutHandler: fanout.NewHandler(notifyModule, zapLogger),
	}

	// 5. 创建并启动 Manager
	mgr, err := worker.NewManagerInstance(cfg, deps, lmstfyClient, zapLogger)
	if err != nil {
		log.Fatalf("Failed to create manager: %v", err)
	}

	go func() {
		if err := mgr.Start(); err != nil {
			log.Fatalf("Manager start failed: %v", err)
		}
	}()

	log.Println("Worker started. Press Ctrl+C to shutdown.")

	// 6. 等待退出信号
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	log.Printf("Received signal: %v, shutting down worker...\n", sig)

	// 7. 优雅关闭 Manager
	mgr.Shutdown()

	log.Println("Worker exited gracefully")
}
