package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
)

const minProdSecretLen = 32

type Config struct {
	Port              string
	Env               string // development | production
	LogLevel          slog.Level
	DatabaseURL       string
	DBConnectAttempts int

	// RedisURL is optional, empty disables the featured products cache
	RedisURL string
	// FrontendURL is the base for product share links and QR codes
	FrontendURL string

	JWTSecret        string        // Secret key for JWT token signing
	JWTTTL           int           // JWT token expiration time in hours
	FeaturedCacheTTL time.Duration // How long the featured list stays cached

	RateLimitRPS       float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst     int     // Burst size for rate limiting
	RateLimitAuthRPS   float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst int     // Burst size for auth endpoints
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnvLevel("LOG_LEVEL", slog.LevelInfo),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DBConnectAttempts:  getEnvInt("DB_CONNECT_ATTEMPTS", 5),
		RedisURL:           getEnv("REDIS_URL", ""),
		FrontendURL:        strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 24),
		FeaturedCacheTTL:   getEnvDuration("FEATURED_CACHE_TTL", 30*time.Second),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:   getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst: getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
	}
}

func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	if c.DatabaseURL == "" {
		err = multierr.Append(err, errors.New("DATABASE_URL is required"))
	}
	if c.JWTSecret == "" {
		err = multierr.Append(err, errors.New("JWT_SECRET is required"))
	} else if c.IsProd() && len(c.JWTSecret) < minProdSecretLen {
		err = multierr.Append(err, fmt.Errorf("JWT_SECRET must be at least %d bytes in production", minProdSecretLen))
	}
	if c.JWTTTL <= 0 {
		err = multierr.Append(err, errors.New("JWT_TTL_HOURS must be positive"))
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		err = multierr.Append(err, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive"))
	}
	if c.RateLimitAuthRPS <= 0 || c.RateLimitAuthBurst <= 0 {
		err = multierr.Append(err, errors.New("RATE_LIMIT_AUTH_RPS and RATE_LIMIT_AUTH_BURST must be positive"))
	}
	if c.DBConnectAttempts <= 0 {
		err = multierr.Append(err, errors.New("DB_CONNECT_ATTEMPTS must be positive"))
	}
	return err
}

func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTTTL) * time.Hour
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvLevel(key string, defaultValue slog.Level) slog.Level {
	if value := os.Getenv(key); value != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
