package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	// DBUrl is optional. When empty, providers come from CatalogPath only and
	// drafts are kept in memory.
	DBUrl string

	CatalogPath        string
	CatalogRefreshSpec string
	CatalogHorizonDays int

	CORSAllowedOrigins []string
	PlannerTimeout     time.Duration
	SessionTTL         time.Duration
	// MaxEventSpanDays caps how many days one event selection may cover.
	MaxEventSpanDays int

	Email EmailConfig
}

// EmailConfig selects and configures the outgoing mailer.
type EmailConfig struct {
	Provider              string
	FromAddress           string
	FromName              string
	AWSRegion             string
	AWSAccessKeyID        string
	AWSSecretAccessKey    string
	SESInsecureSkipVerify bool
}

// Load loads configuration from environment variables.
// Outside production it first loads envFiles (".env" when none are given).
func Load(envFiles ...string) (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production we rely on system environment variables.
	if env != "production" {
		if err := godotenv.Load(envFiles...); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getenv("PORT", "8080"),
		DBUrl:              os.Getenv("DATABASE_URL"),
		CatalogPath:        getenv("CATALOG_PATH", "catalog.yaml"),
		CatalogRefreshSpec: getenv("CATALOG_REFRESH_SPEC", "@every 15m"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Email: EmailConfig{
			Provider:           strings.ToLower(getenv("EMAIL_PROVIDER", "noop")),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			AWSRegion:          getenv("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		},
	}

	var err error
	if cfg.CatalogHorizonDays, err = getInt("CATALOG_HORIZON_DAYS", 365); err != nil {
		return nil, err
	}
	if cfg.CatalogHorizonDays < 1 {
		return nil, fmt.Errorf("CATALOG_HORIZON_DAYS must be positive, got %d", cfg.CatalogHorizonDays)
	}
	if cfg.MaxEventSpanDays, err = getInt("MAX_EVENT_SPAN_DAYS", 366); err != nil {
		return nil, err
	}
	if cfg.MaxEventSpanDays < 1 {
		return nil, fmt.Errorf("MAX_EVENT_SPAN_DAYS must be positive, got %d", cfg.MaxEventSpanDays)
	}
	if cfg.PlannerTimeout, err = getDuration("PLANNER_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = getDuration("SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if s := os.Getenv("AWS_SES_INSECURE_SKIP_VERIFY"); s != "" {
		if cfg.Email.SESInsecureSkipVerify, err = strconv.ParseBool(s); err != nil {
			return nil, fmt.Errorf("AWS_SES_INSECURE_SKIP_VERIFY: %w", err)
		}
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	s := strings.TrimSpace(os.Getenv(key))
	if s == "" {
		return def, nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
