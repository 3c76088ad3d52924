package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	JWTSecret      string
	GatewayTrusted bool

	RateLimitComment    time.Duration
	RateLimitPoint      time.Duration
	RateLimitSubmission time.Duration

	ViewFlushInterval time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		JWTSecret:      getEnv("JWT_SECRET", "12345"),
		GatewayTrusted: getEnvBool("GATEWAY_TRUSTED", false),
	}

	var err error
	cfg.RateLimitComment, err = time.ParseDuration(getEnv("RATE_LIMIT_COMMENT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_COMMENT: %w", err)
	}
	cfg.RateLimitPoint, err = time.ParseDuration(getEnv("RATE_LIMIT_POINT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_POINT: %w", err)
	}
	cfg.RateLimitSubmission, err = time.ParseDuration(getEnv("RATE_LIMIT_SUBMISSION", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SUBMISSION: %w", err)
	}
	cfg.ViewFlushInterval, err = time.ParseDuration(getEnv("VIEW_FLUSH_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid VIEW_FLUSH_INTERVAL: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
