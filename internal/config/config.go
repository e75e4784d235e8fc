// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables; the envconfig tag
// names the variable and default supplies the value used when it is unset.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `envconfig:"PORT" default:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// LogLevel controls the minimum log level: debug, info, warn, or error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// CORSOrigins is the comma-separated list of allowed cross-origin request origins.
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`

	// MaxDBConns caps the number of pooled Postgres connections.
	MaxDBConns int32 `envconfig:"MAX_DB_CONNS" default:"10"`

	// RateLimitRPS is the steady-state number of requests per second the
	// server admits. Zero disables rate limiting.
	RateLimitRPS float64 `envconfig:"RATE_LIMIT_RPS" default:"50"`

	// RateLimitBurst is the number of requests admitted in a burst above RateLimitRPS.
	RateLimitBurst int `envconfig:"RATE_LIMIT_BURST" default:"100"`

	// MaxRangeDays caps the number of days a single /rates query may span.
	// Zero disables the cap.
	MaxRangeDays int `envconfig:"MAX_RANGE_DAYS" default:"3660"`

	// ShutdownTimeout bounds how long in-flight requests may run after SIGTERM.
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variable that is not set.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	// envconfig treats a variable set to "" as present; it is still missing to us.
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("config: required environment variables not set: DATABASE_URL")
	}
	if cfg.MaxDBConns < 1 {
		return Config{}, fmt.Errorf("config: MAX_DB_CONNS must be at least 1, got %d", cfg.MaxDBConns)
	}
	if cfg.MaxRangeDays < 0 {
		return Config{}, fmt.Errorf("config: MAX_RANGE_DAYS must not be negative, got %d", cfg.MaxRangeDays)
	}
	return cfg, nil
}
