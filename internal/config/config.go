package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL         string
	RazorpayKeyID      string
	HTTPTimeout        time.Duration
	RateLimitPerMinute int
	StatePath          string
	AppEnv             string
	LogLevel           string
	LogFormat          string
	SentryDSN          string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Config{
		APIBaseURL:         getEnv("AURA_API_BASE_URL", "http://localhost:8000"),
		RazorpayKeyID:      getEnv("RAZORPAY_KEY_ID", ""),
		HTTPTimeout:        time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 20),
		StatePath:          getEnv("AURA_STATE_PATH", defaultStatePath()),
		AppEnv:             normalizeEnv(getEnv("APP_ENV", "production")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
	}, nil
}

// CheckoutConfigured reports whether a checkout public key is present.
// Its absence is surfaced at purchase time, not at startup.
func (c *Config) CheckoutConfigured() bool {
	return c != nil && c.RazorpayKeyID != ""
}

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "aura_user.json"
	}
	return filepath.Join(dir, "aura", "user.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}

	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
