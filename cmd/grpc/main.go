package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-inventory-service/config"
	inventoryv1 "github.com/fekuna/omnipos-inventory-service/gen/go/omnipos/inventory/v1"
	"github.com/fekuna/omnipos-inventory-service/pkg/broker"
	"github.com/fekuna/omnipos-inventory-service/pkg/cache"
	"github.com/fekuna/omnipos-inventory-service/pkg/database/postgres"
	"github.com/fekuna/omnipos-inventory-service/pkg/logger"
	"github.com/fekuna/omnipos-inventory-service/pkg/middleware"
	"github.com/fekuna/omnipos-inventory-service/pkg/search"

	"github.com/fekuna/omnipos-inventory-service/internal/audit"
	auditPubPkg "github.com/fekuna/omnipos-inventory-service/internal/audit/publisher"
	"github.com/fekuna/omnipos-inventory-service/internal/batchtype"
	btRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/batchtype/repository"
	"github.com/fekuna/omnipos-inventory-service/internal/instance"
	instRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/instance/repository"
	instSearchPkg "github.com/fekuna/omnipos-inventory-service/internal/instance/search"
	ledgerH "github.com/fekuna/omnipos-inventory-service/internal/ledger/handler"
	ledgerListenerPkg "github.com/fekuna/omnipos-inventory-service/internal/ledger/listener"
	ledgerUCPkg "github.com/fekuna/omnipos-inventory-service/internal/ledger/usecase"
	"github.com/fekuna/omnipos-inventory-service/internal/reference"
	refRepoPkg "github.com/fekuna/omnipos-inventory-service/internal/reference/repository"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Initialize Stores
	var (
		instRepo instance.Repository
		btRepo   batchtype.Repository
		refRepo  reference.Repository
	)

	switch cfg.Ledger.StoreDriver {
	case config.StoreMemory:
		btMem := btRepoPkg.NewMemoryRepository()
		refMem := refRepoPkg.NewMemoryRepository()
		if cfg.Ledger.SeedFile != "" {
			n, err := loadSeed(cfg.Ledger.SeedFile, btMem, refMem)
			if err != nil {
				appLogger.Fatal("Could not load seed file", zap.String("path", cfg.Ledger.SeedFile), zap.Error(err))
			}
			appLogger.Info("Loaded seed data", zap.String("path", cfg.Ledger.SeedFile), zap.Int("records", n))
		}

		instRepo = instRepoPkg.NewMemoryRepository(cfg.Ledger.MaxUpdateAttempts)
		btRepo = btMem
		refRepo = refMem
		appLogger.Warn("Using in-memory store, data is lost on restart")

	case config.StorePostgres:
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to database", zap.Error(err))
		}
		defer db.Close()
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

		instRepo = instRepoPkg.NewPGRepository(db, cfg.Ledger.MaxUpdateAttempts)
		btRepo = btRepoPkg.NewPGRepository(db)
		refRepo = refRepoPkg.NewPGRepository(db)

	default:
		appLogger.Fatal("Unknown store driver", zap.String("store_driver", cfg.Ledger.StoreDriver))
	}
	instRepo = instRepoPkg.NewTracingRepository(instRepo)

	// 4. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.Ledger.StoreDriver != config.StoreMemory {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		appLogger.Warn("Redis unavailable, catalog cache and order listener disabled", zap.Error(err))
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
		btRepo = btRepoPkg.NewCachedRepository(btRepo, redisClient, cfg.Ledger.CatalogCacheTTL, appLogger)
	}

	// 5. Initialize Kafka
	movementProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.AuditTopic,
	})
	defer movementProducer.Close()
	movementSink := audit.NewAsyncSink(auditPubPkg.NewKafkaSink(movementProducer), cfg.Ledger.PublishQueueSize, cfg.Ledger.PublishTimeout, appLogger)
	defer movementSink.Close()
	appLogger.Info("Kafka movement publisher ready", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.AuditTopic))

	// 6. Initialize Elasticsearch
	var indexer ledgerUCPkg.Indexer
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (instance search will not be updated)", zap.Error(err))
	} else {
		indexer = instSearchPkg.NewElasticIndexer(esClient, cfg.Elastic.Index)
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 7. Initialize UseCase
	ledgerUC := ledgerUCPkg.NewLedgerUseCase(instRepo, btRepo, refRepo, movementSink, indexer, appLogger, ledgerUCPkg.Options{
		CodeRetryAttempts: cfg.Ledger.CodeRetryAttempts,
		PublishTimeout:    cfg.Ledger.PublishTimeout,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 8. Initialize Listener
	if redisClient != nil {
		orderConsumer := broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.OrdersTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		defer orderConsumer.Close()
		appLogger.Info("Connected to Kafka Consumer", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.OrdersTopic))

		orderListener := ledgerListenerPkg.NewOrderListener(orderConsumer, redisClient, ledgerUC, appLogger)
		go orderListener.Start(ctx)
	}

	// 9. Start Metrics Server
	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:              withColon(cfg.Server.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		appLogger.Info("Starting metrics server", zap.String("port", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("metrics server failed", zap.Error(err))
		}
	}()

	// 10. Start gRPC Server
	port := withColon(cfg.Server.GRPCPort)
	lis, err := net.Listen("tcp", port)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.ContextInterceptor(),
			middleware.LoggingInterceptor(appLogger),
		),
	)
	inventoryv1.RegisterInstanceLedgerServiceServer(grpcServer, ledgerH.NewLedgerHandler(ledgerUC, appLogger))

	appLogger.Info("Starting gRPC server", zap.String("port", port), zap.String("store_driver", cfg.Ledger.StoreDriver))

	// Graceful Shutdown
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	cancel()
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("metrics server shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func withColon(port string) string {
	if !strings.HasPrefix(port, ":") && !strings.Contains(port, ":") {
		return ":" + port
	}
	return port
}
