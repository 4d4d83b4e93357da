package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aleclahey/payroll-backend-go/internal/pkg/currency"
	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Payroll  PayrollConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// UpstreamConfig points at the payroll REST API the backend derives everything from
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PayrollConfig holds derivation defaults. A zero MonthSyncInterval disables
// the job that keeps the current payroll month present upstream.
type PayrollConfig struct {
	DefaultPeriod     string
	Currency          string
	MonthSyncInterval time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Upstream API configuration
	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: strings.TrimRight(getEnv("UPSTREAM_BASE_URL", "http://127.0.0.1:8000/api"), "/"),
		Timeout: timeout,
	}

	monthSync, err := time.ParseDuration(getEnv("PAYROLL_MONTH_SYNC_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_MONTH_SYNC_INTERVAL: %w", err)
	}

	config.Payroll = PayrollConfig{
		DefaultPeriod:     getEnv("PAYROLL_DEFAULT_PERIOD", "monthly"),
		Currency:          getEnv("PAYROLL_CURRENCY", "USD"),
		MonthSyncInterval: monthSync,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute URL")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if c.Payroll.MonthSyncInterval < 0 {
		return fmt.Errorf("PAYROLL_MONTH_SYNC_INTERVAL must not be negative")
	}
	if !currency.Valid(c.Payroll.Currency) {
		return fmt.Errorf("PAYROLL_CURRENCY must be an ISO 4217 code")
	}
	return nil
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
