package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingSecret is returned when no token signing secret is configured
var ErrMissingSecret = errors.New("ACCESS_TOKEN_SECRET not set in environment")

// AppConfig holds everything the server reads from the environment
type AppConfig struct {
	ServerPort        string
	AccessTokenSecret string
	TokenTTL          time.Duration // embedded JWT lifetime
	SessionTTL        time.Duration // stored session lifetime
	CookieSecure      bool
	CookieDomain      string
	CORSOrigins       []string
	RedisAddr         string // empty disables the login limiter
	RedisPassword     string
	RedisDB           int
	LoginMaxAttempts  int
	LoginWindow       time.Duration
	LogLevel          string
	InitialAdminEmail string
}

// Load reads AppConfig from environment variables, applying defaults
func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		ServerPort:        getenv("SERVER_PORT", "8080"),
		AccessTokenSecret: os.Getenv("ACCESS_TOKEN_SECRET"),
		CookieDomain:      os.Getenv("COOKIE_DOMAIN"),
		CORSOrigins:       splitList(getenv("CORS_ORIGINS", "http://localhost:3000")),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		InitialAdminEmail: strings.TrimSpace(os.Getenv("INITIAL_ADMIN_EMAIL")),
	}
	if cfg.AccessTokenSecret == "" {
		return nil, ErrMissingSecret
	}

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = durationEnv("SESSION_TTL", time.Hour); err != nil {
		return nil, err
	}
	if cfg.LoginWindow, err = durationEnv("LOGIN_WINDOW", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.LoginMaxAttempts, err = intEnv("LOGIN_MAX_ATTEMPTS", 5); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CookieSecure, err = boolEnv("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationEnv(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", k)
	}
	return d, nil
}

func intEnv(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return n, nil
}

func boolEnv(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", k, err)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
