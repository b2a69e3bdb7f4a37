// Command seed creates the default admin and user accounts through the
// signup service, so seeded passwords are hashed like any other.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"business_manager/internal/config"
	"business_manager/internal/logging"
	"business_manager/internal/model"
	"business_manager/internal/repository"
	"business_manager/internal/service"
	"business_manager/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.LogLevel)

	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		logger.Error("Failed to load DB config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dbPool, err := config.ConnectDB(ctx, dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := config.MigratePool(ctx, dbPool); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	adminEmail := cfg.InitialAdminEmail
	if adminEmail == "" {
		adminEmail = "admin@example.com"
	}
	accounts := []model.SignupRequest{
		{Name: "Admin", Email: adminEmail, Password: getenv("SEED_ADMIN_PASSWORD", "admin123")},
		{Name: "User", Email: "user@example.com", Password: getenv("SEED_USER_PASSWORD", "user123")},
	}

	jwtUtil := utils.NewJWTUtil(cfg.AccessTokenSecret, cfg.TokenTTL)
	authService := service.NewAuthService(repository.NewUserRepository(dbPool), jwtUtil, service.AuthOptions{
		InitialAdminEmail: adminEmail,
	})

	failed := false
	for _, acc := range accounts {
		user, err := authService.Signup(ctx, acc)
		switch {
		case errors.Is(err, service.ErrConflict):
			logger.Info("account already exists, skipping", "email", acc.Email)
		case err != nil:
			logger.Error("failed to seed account", "email", acc.Email, "error", err)
			failed = true
		default:
			logger.Info("seeded account", "id", user.ID, "email", user.Email, "role", user.Role)
		}
	}
	if failed {
		os.Exit(1)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
