// Package config loads server settings from NARRATIVE_* environment variables.
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/redis"
)

// Progress storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds everything cmd/server needs to assemble the service
type Config struct {
	GRPCPort    int    `env:"NARRATIVE_GRPC_PORT" envDefault:"50051"`
	MetricsAddr string `env:"NARRATIVE_METRICS_ADDR" envDefault:":9090"`

	// ContentPath points at a story YAML file, empty means the embedded story
	ContentPath string `env:"NARRATIVE_CONTENT_PATH"`
	// ContentDB serves the story from an imported SQLite database instead
	ContentDB string `env:"NARRATIVE_CONTENT_DB"`

	ProgressBackend string `env:"NARRATIVE_PROGRESS_BACKEND" envDefault:"memory"`
	RedisAddr       string `env:"NARRATIVE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"NARRATIVE_REDIS_PASSWORD"`
	RedisDB         int    `env:"NARRATIVE_REDIS_DB" envDefault:"0"`
	// Connection pool tuning; zero keeps the go-redis defaults
	RedisPoolSize        int           `env:"NARRATIVE_REDIS_POOL_SIZE"`
	RedisMinIdleConns    int           `env:"NARRATIVE_REDIS_MIN_IDLE_CONNS"`
	RedisConnMaxIdleTime time.Duration `env:"NARRATIVE_REDIS_CONN_MAX_IDLE_TIME"`
	RedisMaxRetries      int           `env:"NARRATIVE_REDIS_MAX_RETRIES"`
	RedisTLS             bool          `env:"NARRATIVE_REDIS_TLS"`
	SQLitePath      string `env:"NARRATIVE_SQLITE_PATH" envDefault:"narrative.db"`

	IdleTTL       time.Duration `env:"NARRATIVE_SESSION_IDLE_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"NARRATIVE_SWEEP_INTERVAL" envDefault:"1m"`

	LogLevel string `env:"NARRATIVE_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and backend specific requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("NARRATIVE_GRPC_PORT", "must be between 1 and 65535, got %d", c.GRPCPort)
	}

	switch c.ProgressBackend {
	case BackendMemory:
	case BackendRedis:
		errors.ValidateRequired("NARRATIVE_REDIS_ADDR", c.RedisAddr, vb)
		if c.RedisPoolSize < 0 {
			vb.Field("NARRATIVE_REDIS_POOL_SIZE", "must not be negative")
		}
		if c.RedisMinIdleConns < 0 {
			vb.Field("NARRATIVE_REDIS_MIN_IDLE_CONNS", "must not be negative")
		}
	case BackendSQLite:
		errors.ValidateRequired("NARRATIVE_SQLITE_PATH", c.SQLitePath, vb)
	default:
		vb.Fieldf("NARRATIVE_PROGRESS_BACKEND", "must be one of %s, %s or %s, got %q",
			BackendMemory, BackendRedis, BackendSQLite, c.ProgressBackend)
	}

	if c.ContentPath != "" && c.ContentDB != "" {
		vb.Field("NARRATIVE_CONTENT_DB", "cannot be combined with NARRATIVE_CONTENT_PATH")
	}
	if c.IdleTTL <= 0 {
		vb.Field("NARRATIVE_SESSION_IDLE_TTL", "must be positive")
	}
	if c.SweepInterval <= 0 {
		vb.Field("NARRATIVE_SWEEP_INTERVAL", "must be positive")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		vb.Fieldf("NARRATIVE_LOG_LEVEL", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// RedisOptions returns the client options for the progress store
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Password:        c.RedisPassword,
		DB:              c.RedisDB,
		PoolSize:        c.RedisPoolSize,
		MinIdleConns:    c.RedisMinIdleConns,
		ConnMaxIdleTime: c.RedisConnMaxIdleTime,
		MaxRetries:      c.RedisMaxRetries,
		UseTLS:          c.RedisTLS,
	}
}

// SlogLevel returns the configured log level, info when unparsable
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
