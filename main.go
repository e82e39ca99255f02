package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/config"
	"github.com/nurseguard/backend/internal/engine"
	"github.com/nurseguard/backend/internal/handler"
	"github.com/nurseguard/backend/internal/middleware"
	"github.com/nurseguard/backend/internal/pdf"
	"github.com/nurseguard/backend/internal/repository"
	"github.com/nurseguard/backend/internal/service"
	"github.com/nurseguard/backend/internal/ws"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize Zap logger
	var logger *zap.Logger
	if cfg.Server.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
	)

	// Account store: Postgres when DATABASE_URL is set, in-memory otherwise
	var accounts repository.AccountStore
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(context.Background(), cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			logger.Fatal("Failed to ping database", zap.Error(err))
		}

		pgStore := repository.NewPostgresAccountStore(pool, logger)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			logger.Fatal("Failed to ensure database schema", zap.Error(err))
		}
		accounts = pgStore
		logger.Info("Using Postgres account store")
	} else {
		accounts = repository.NewMemoryAccountStore(logger)
		logger.Info("Using in-memory account store")
	}

	// Engine components share one RNG and the wall clock
	clock := engine.SystemClock()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// WebSocket hub for the alert stream
	hub := ws.NewHub(logger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go hub.Run(hubCtx)

	// Stores and services
	history := repository.NewAlertHistory(logger)
	monitor := service.NewMonitoringService(
		engine.NewGenerator(rng, clock),
		engine.NewRiskScorer(rng, clock),
		clock,
		history,
		hub,
		logger,
		service.MonitorOptions{
			InitialBatchSize:  cfg.Engine.InitialBatchSize,
			InitialDelay:      cfg.Engine.InitialDelay,
			Interval:          cfg.Engine.Interval,
			CriticalWindow:    cfg.Critical.Window,
			CriticalThreshold: cfg.Critical.Threshold,
			DisplayTimeout:    cfg.Critical.DisplayTimeout,
		},
	)
	authService := service.NewAuthService(accounts, logger)
	analyticsService := service.NewAnalyticsService(history, logger)
	reportService := service.NewReportService(monitor, pdf.NewPDFGenerator(logger), logger)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Configure appropriately for production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add request ID middleware
	r.Use(middleware.RequestIDMiddleware())

	// Add request logging middleware
	r.Use(middleware.RequestLoggingMiddleware(logger))

	// Add error logging middleware
	r.Use(middleware.ErrorLoggingMiddleware(logger))

	// Register API handlers
	handler.RegisterRoutes(r, handler.Handlers{
		Auth:      handler.NewAuthHandler(authService, logger),
		Engine:    handler.NewEngineHandler(monitor, logger),
		Alerts:    handler.NewAlertsHandler(monitor, logger),
		Patients:  handler.NewPatientsHandler(monitor, logger),
		Analytics: handler.NewAnalyticsHandler(analyticsService, logger),
		Report:    handler.NewReportHandler(reportService, logger),
		WS:        handler.NewWSHandler(hub, logger),
		Health:    handler.NewHealthHandler(monitor, pool, logger),
	})

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Stop generating alerts before draining connections
	monitor.Stop()
	stopHub()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
