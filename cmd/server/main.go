package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"business_manager/internal/config"
	"business_manager/internal/handler"
	"business_manager/internal/logging"
	"business_manager/internal/middleware"
	"business_manager/internal/ratelimit"
	"business_manager/internal/repository"
	"business_manager/internal/service"
	"business_manager/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("Failed to load DB config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// --- Migrations ---
	if err := config.MigratePool(ctx, dbPool); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	// --- Redis (optional) ---
	authOpts := service.AuthOptions{
		SessionTTL:        cfg.SessionTTL,
		InitialAdminEmail: cfg.InitialAdminEmail,
	}
	if rdb := config.ConnectRedis(ctx, cfg); rdb != nil {
		defer rdb.Close()
		authOpts.Limiter = ratelimit.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)
	}

	// --- Initialize Utilities ---
	jwtUtil := utils.NewJWTUtil(cfg.AccessTokenSecret, cfg.TokenTTL)

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	customerRepo := repository.NewCustomerRepository(dbPool)
	paymentRepo := repository.NewPaymentRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, jwtUtil, authOpts)
	customerService := service.NewCustomerService(customerRepo)
	paymentService := service.NewPaymentService(paymentRepo, customerRepo)

	// --- Setup Gin Router ---
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(handler.RouterDeps{
		Auth:      authService,
		Customers: customerService,
		Payments:  paymentService,
		DB:        dbPool,
		Logger:    logger,
		Cookies: handler.CookieOptions{
			MaxAge: cfg.SessionTTL,
			Domain: cfg.CookieDomain,
			Secure: cfg.CookieSecure,
		},
		CORSOrigins: cfg.CORSOrigins,
		Gate:        middleware.DefaultGateConfig(),
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen failed", "error", err)
			stop()
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exiting")
}
