package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "dinepos/docs"
	"dinepos/internal/caching"
	"dinepos/internal/config"
	"dinepos/internal/events"
	"dinepos/internal/handlers"
	"dinepos/internal/jobs"
	"dinepos/internal/jobs/background"
	"dinepos/internal/logging"
	"dinepos/internal/middleware"
	"dinepos/internal/repositories"
	"dinepos/internal/services"
	"dinepos/pkg/database"
)

const version = "1.0.0"

// @title        DinePOS API
// @version      1.0
// @description  Restaurant point-of-sale: orders, recipes, tables and the inventory ledger.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if cfg.Database.RunMigrations {
		if err := database.RunMigrations(ctx, pool, logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Redis is optional; without it recipes are read straight from the store.
	var recipeCache caching.RecipeCache
	var cachePinger handlers.Pinger
	redisClient, err := caching.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err == nil {
		defer redisClient.Close()
		cache := caching.NewRedisRecipeCache(redisClient, cfg.Redis.RecipeTTL)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err = cache.Ping(pingCtx)
		cancel()
		if err == nil {
			recipeCache = cache
			cachePinger = cache
		}
	}
	if err != nil {
		logger.Warn("Recipe cache disabled", zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.AMQP.URL != "" {
		publisher, err = events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			logger.Fatal("Failed to connect to message broker", zap.Error(err))
		}
	}
	defer publisher.Close()

	var snapshotStore services.SnapshotStore
	var storagePinger handlers.Pinger
	store, err := services.NewMinioSnapshotStore(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.Region, cfg.Minio.UseSSL)
	if err == nil {
		err = store.EnsureBucket(ctx)
	}
	if err != nil {
		logger.Warn("Inventory snapshots disabled", zap.Error(err))
	} else {
		snapshotStore = store
		storagePinger = store
	}

	// Repositories
	inventoryRepo := repositories.NewInventoryRepo(pool)
	productRepo := repositories.NewProductRepo(pool)
	orderRepo := repositories.NewOrderRepo(pool)
	tableRepo := repositories.NewTableRepo(pool)
	transactor := repositories.NewTransactor(pool)

	// Services
	inventorySvc := services.NewInventoryService(inventoryRepo, logger)
	productSvc := services.NewProductService(productRepo, recipeCache, logger)
	tableSvc := services.NewTableService(tableRepo, orderRepo, logger)
	orderSvc := services.NewOrderService(orderRepo, productSvc, inventorySvc, tableSvc, transactor, publisher, cfg.Orders, logger)

	// Background jobs
	scheduler, err := background.NewJobScheduler(logger)
	if err != nil {
		logger.Fatal("Failed to create job scheduler", zap.Error(err))
	}
	alerts := jobs.NewInventoryAlertService(inventoryRepo, logger)
	if err := scheduler.AddJob("inventory-low-stock", cfg.Jobs.LowStockInterval, alerts.ScheduledLowStockCheck); err != nil {
		logger.Fatal("Failed to schedule low stock check", zap.Error(err))
	}
	if snapshotStore != nil {
		snapshots := jobs.NewInventorySnapshotJob(inventoryRepo, snapshotStore, cfg.Jobs.SnapshotWindow, logger)
		if err := scheduler.AddJob("inventory-snapshot", cfg.Jobs.SnapshotInterval, snapshots.Run); err != nil {
			logger.Fatal("Failed to schedule inventory snapshot", zap.Error(err))
		}
	}
	scheduler.Start()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, middleware.TenantHeader},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Pre(echoMiddleware.RemoveTrailingSlash())

	handlers.RegisterRoutes(e, middleware.NewVersionMiddleware(), handlers.Routes{
		Health:    handlers.NewHealthHandlers(pool, cachePinger, storagePinger, version),
		Orders:    handlers.NewOrderHandlers(orderSvc, logger),
		Inventory: handlers.NewInventoryHandlers(inventorySvc, logger),
		Products:  handlers.NewProductHandlers(productSvc, logger),
		Tables:    handlers.NewTableHandlers(tableSvc, logger),
		Jobs:      handlers.NewJobHandlers(scheduler),
	})

	go func() {
		logger.Info("DinePOS server starting",
			zap.String("version", version),
			zap.Int("port", cfg.Server.Port),
			zap.String("transaction_mode", cfg.Orders.TransactionMode))
		if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP shutdown failed", zap.Error(err))
	}
	if err := scheduler.Stop(); err != nil {
		logger.Error("Scheduler shutdown failed", zap.Error(err))
	}
}
