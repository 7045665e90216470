package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"

	"github.com/iho/txdash/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	// Transaction service
	RemoteBaseURL     string        `env:"REMOTE_BASE_URL"     envDefault:"http://localhost:3000/api/v1/transactions"`
	RemoteTimeout     time.Duration `env:"REMOTE_TIMEOUT"      envDefault:"10s"`
	RemoteListRetries int           `env:"REMOTE_LIST_RETRIES" envDefault:"2"`

	// Dashboard
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Error reports (Redis is optional - leave empty to keep reports in memory)
	RedisURL  string        `env:"REDIS_URL"  envDefault:""`
	ReportTTL time.Duration `env:"REPORT_TTL" envDefault:"1h"`
	ReportDir string        `env:"REPORT_DIR" envDefault:"."`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.RemoteBaseURL == "" {
		return fmt.Errorf("REMOTE_BASE_URL must not be empty")
	}
	if !domain.IsValidPageSize(c.DefaultPageSize) {
		return fmt.Errorf("DEFAULT_PAGE_SIZE %d: %w", c.DefaultPageSize, domain.ErrInvalidPageSize)
	}
	if c.RemoteListRetries < 0 {
		return fmt.Errorf("REMOTE_LIST_RETRIES must not be negative, got %d", c.RemoteListRetries)
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}
