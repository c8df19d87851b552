// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	cardDomain "github.com/allisson/cardengine/internal/card/domain"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ShutdownTimeout bounds how long graceful shutdown waits for in-flight requests.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// CardMinLength is the shortest card number accepted for validation and classification.
	CardMinLength int
	// CardMaxLength is the longest card number accepted for validation and classification.
	CardMaxLength int
	// EntropyPoolBytes is the number of random bytes drawn for each generated card number.
	EntropyPoolBytes int

	// RateLimitEnabled indicates whether per-IP rate limiting of the card endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for per-IP rate limiting.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Card engine
		CardMinLength:    env.GetInt("CARD_MIN_LENGTH", 7),
		CardMaxLength:    env.GetInt("CARD_MAX_LENGTH", 18),
		EntropyPoolBytes: env.GetInt("ENTROPY_POOL_BYTES", cardDomain.DefaultEntropyPoolBytes),

		// Rate Limiting (IP-based)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "cardengine"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.MetricsPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.CardMinLength, validation.Required, validation.Min(2)),
		validation.Field(&c.CardMaxLength, validation.Required, validation.Min(c.CardMinLength)),
		validation.Field(&c.EntropyPoolBytes, validation.Required, validation.Min(cardDomain.MinEntropyPoolBytes)),
		validation.Field(&c.RateLimitRequestsPerSec,
			validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.001)),
		),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
		validation.Field(&c.MetricsNamespace, validation.When(c.MetricsEnabled, validation.Required)),
	)
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	case "info", "warn", "error":
		return "release"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	// Search for .env file recursively up the directory tree
	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// .env file found, load it
			_ = godotenv.Load(envPath)
			return
		}

		// Move to parent directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root directory
			break
		}
		dir = parent
	}
}
