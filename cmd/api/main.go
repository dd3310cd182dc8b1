package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hood-sync/internal/core/cache"
	"hood-sync/internal/core/config"
	"hood-sync/internal/core/database"
	"hood-sync/internal/core/logger"
	"hood-sync/internal/core/proxy"
	"hood-sync/internal/core/server"
	categoryadapter "hood-sync/internal/features/categories/adapters"
	categoryhandler "hood-sync/internal/features/categories/handler"
	categoryservice "hood-sync/internal/features/categories/service"
	hoodadapter "hood-sync/internal/features/hood/adapters"
	hoodhandler "hood-sync/internal/features/hood/handler"
	listingadapter "hood-sync/internal/features/listings/adapters"
	listinghandler "hood-sync/internal/features/listings/handler"
	listingservice "hood-sync/internal/features/listings/service"
	orderadapter "hood-sync/internal/features/orders/adapters"
	orderhandler "hood-sync/internal/features/orders/handler"
	orderservice "hood-sync/internal/features/orders/service"

	"go.uber.org/zap"
)

const syncLockKey = "lock:orders-sync"

// @title Hood Sync API
// @version 1.0
// @description This API synchronizes Hood.de orders into the local store and manages Hood.de listings.
// @contact.name API Support
// @contact.email support@hood-sync.dev
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	db, err := database.Open(cfg.Database, cfg.Environment)
	if err != nil {
		l.Fatal("Database connection failed", zap.Error(err))
	}
	models := append(orderadapter.Models(), listingadapter.Models()...)
	if err := database.Migrate(db, models...); err != nil {
		l.Fatal("Database migration failed", zap.Error(err))
	}

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Redis connection failed", zap.Error(err))
	}
	defer redisCache.Close()
	if err := redisCache.Ping(context.Background()); err != nil {
		l.Fatal("Redis ping failed", zap.Error(err))
	}

	// Initialize Hood.de Adapter and run Health Check
	hood := hoodadapter.NewHoodAdapter(cfg.Hood, proxy.FromConfig(cfg.Proxy))
	if cfg.Hood.SkipHealthCheck {
		l.Warn("Hood.de health check skipped")
	} else {
		if err := hood.HealthCheck(); err != nil {
			l.Fatal("Hood.de Health Check Failed", zap.Error(err))
		}
		l.Info("Hood.de connection verified")
	}

	// Orders
	syncLock := cache.NewLock(redisCache, syncLockKey, cfg.Redis.SyncLockTTL)
	syncService := orderservice.NewSyncService(
		hood,
		orderadapter.NewGormOrderRepository(db),
		orderadapter.NewGormSyncRunRepository(db),
		syncLock,
	)
	syncHandler := orderhandler.NewSyncHandler(syncService)

	// Listings
	uploadService := listingservice.NewUploadService(
		hood,
		listingadapter.NewGormUploadLogRepository(db),
		listingservice.IntervalPacer{Interval: cfg.Hood.UploadInterval},
	)
	listingHandler := listinghandler.NewListingHandler(uploadService)

	// Categories
	categoryService := categoryservice.NewCategoryService(
		hood,
		categoryadapter.NewRedisCategoryCache(redisCache),
		cfg.Redis.CategoryCacheTTL,
	)
	categoryHandler := categoryhandler.NewCategoryHandler(categoryService)

	healthHandler := hoodhandler.NewHealthHandler(hood)

	srv := server.New(cfg)

	// Register Routes. Static segments go before parameters.
	srv.App.Get("/health", healthHandler.Health)

	srv.App.Post("/orders/sync", syncHandler.Sync)
	srv.App.Post("/orders/sync/recent", syncHandler.SyncRecent)
	srv.App.Get("/orders/summary", syncHandler.GetSummary)
	srv.App.Get("/orders/:id", syncHandler.GetOrder)
	srv.App.Get("/sync-runs", syncHandler.ListRuns)

	srv.App.Get("/listings", listingHandler.List)
	srv.App.Put("/listings", listingHandler.Update)
	srv.App.Delete("/listings", listingHandler.Delete)
	srv.App.Post("/listings/validate", listingHandler.Validate)
	srv.App.Post("/listings/bulk", listingHandler.BulkUpload)
	srv.App.Get("/listings/bulk/:id", listingHandler.GetBulk)
	srv.App.Get("/listings/status", listingHandler.Status)
	srv.App.Post("/listings/variants/classify", listingHandler.ClassifyVariants)
	srv.App.Post("/listings/:ref/upload", listingHandler.Upload)
	srv.App.Get("/listings/:ref/logs", listingHandler.Logs)
	srv.App.Get("/listings/:id/detail", listingHandler.Detail)

	srv.App.Get("/categories/shop", categoryHandler.ShopCategories)
	srv.App.Get("/categories/:id", categoryHandler.Browse)
	srv.App.Delete("/categories/:id/cache", categoryHandler.Invalidate)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := srv.Shutdown(30 * time.Second); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
	l.Info("Server stopped")
}
