package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ar-vacations/pms-gateway/internal/application"
	"github.com/ar-vacations/pms-gateway/internal/catalog"
	"github.com/ar-vacations/pms-gateway/internal/config"
	"github.com/ar-vacations/pms-gateway/internal/handler"
	"github.com/ar-vacations/pms-gateway/internal/health"
	"github.com/ar-vacations/pms-gateway/internal/logger"
	"github.com/ar-vacations/pms-gateway/internal/metrics"
	"github.com/ar-vacations/pms-gateway/internal/middleware"
	"github.com/ar-vacations/pms-gateway/internal/provider"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "pms-gateway")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting pms-gateway",
		zap.String("port", cfg.Port),
		zap.String("app_env", cfg.AppEnv),
		zap.Bool("use_mock", cfg.PMS.UseMock),
	)

	// Register Prometheus collectors
	metrics.RegisterDefault()

	// Initialize the provider via the factory (the sole construction
	// seam; nothing else builds an adapter directly)
	pmsProvider := provider.New(cfg, log)

	// Resolved unit-ID memo: Redis-backed when configured, in-memory
	// otherwise. Advisory either way.
	var idCache provider.IDCache = provider.NewMemoryIDCache()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer func() { _ = redisClient.Close() }()
		idCache = provider.NewRedisIDCache(redisClient, log)
		log.Info("using redis unit-id cache", zap.String("addr", cfg.RedisAddr))
	}

	resolver := provider.NewResolver(cfg.PMS.UnitIDs, idCache, pmsProvider, log)

	// Initialize application service
	pmsService := application.NewPMSService(pmsProvider, resolver, log)

	// Initialize HTTP handlers
	pmsHandler := handler.NewPMSHandler(pmsService, cfg)
	catalogHandler := handler.NewCatalogHandler(catalog.NewStore(cfg.CatalogPath))
	debugHandler := handler.NewDebugHandler(cfg)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	// Slash normalization belongs to the canonical-host middleware.
	router.RedirectTrailingSlash = false

	// Apply global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CanonicalHost(cfg.SiteURL, cfg.IsProduction()))

	// Register health and metrics routes
	health.NewHandler("pms-gateway").RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// Register routes
	pmsHandler.RegisterRoutes(&router.RouterGroup)
	catalogHandler.RegisterRoutes(&router.RouterGroup)
	debugHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down pms-gateway...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("pms-gateway stopped")
}
