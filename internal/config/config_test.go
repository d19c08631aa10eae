package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-narrative/internal/config"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	"github.com/KirkDiggler/rpg-narrative/internal/redis"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(50051, cfg.GRPCPort)
	s.Equal(":9090", cfg.MetricsAddr)
	s.Empty(cfg.ContentPath)
	s.Equal(config.BackendMemory, cfg.ProgressBackend)
	s.Equal(30*time.Minute, cfg.IdleTTL)
	s.Equal(time.Minute, cfg.SweepInterval)
	s.Equal(slog.LevelInfo, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("NARRATIVE_GRPC_PORT", "6000")
	s.T().Setenv("NARRATIVE_PROGRESS_BACKEND", "redis")
	s.T().Setenv("NARRATIVE_REDIS_ADDR", "cache:6380")
	s.T().Setenv("NARRATIVE_SESSION_IDLE_TTL", "5m")
	s.T().Setenv("NARRATIVE_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(6000, cfg.GRPCPort)
	s.Equal(config.BackendRedis, cfg.ProgressBackend)
	s.Equal("cache:6380", cfg.RedisAddr)
	s.Equal(5*time.Minute, cfg.IdleTTL)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
}

func (s *ConfigTestSuite) TestRedisOptions() {
	s.T().Setenv("NARRATIVE_REDIS_PASSWORD", "secret")
	s.T().Setenv("NARRATIVE_REDIS_DB", "2")
	s.T().Setenv("NARRATIVE_REDIS_POOL_SIZE", "20")
	s.T().Setenv("NARRATIVE_REDIS_MIN_IDLE_CONNS", "4")
	s.T().Setenv("NARRATIVE_REDIS_CONN_MAX_IDLE_TIME", "90s")
	s.T().Setenv("NARRATIVE_REDIS_MAX_RETRIES", "5")
	s.T().Setenv("NARRATIVE_REDIS_TLS", "true")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(&redis.Options{
		Password:        "secret",
		DB:              2,
		PoolSize:        20,
		MinIdleConns:    4,
		ConnMaxIdleTime: 90 * time.Second,
		MaxRetries:      5,
		UseTLS:          true,
	}, cfg.RedisOptions())
}

func (s *ConfigTestSuite) TestMalformedValue() {
	s.T().Setenv("NARRATIVE_GRPC_PORT", "not-a-port")

	_, err := config.Load()
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	valid := func() *config.Config {
		return &config.Config{
			GRPCPort:        50051,
			ProgressBackend: config.BackendMemory,
			IdleTTL:         time.Minute,
			SweepInterval:   time.Second,
			LogLevel:        "info",
		}
	}

	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{name: "port", mutate: func(c *config.Config) { c.GRPCPort = 70000 }, field: "NARRATIVE_GRPC_PORT"},
		{name: "backend", mutate: func(c *config.Config) { c.ProgressBackend = "postgres" }, field: "NARRATIVE_PROGRESS_BACKEND"},
		{name: "pool size", mutate: func(c *config.Config) { c.ProgressBackend, c.RedisAddr, c.RedisPoolSize = config.BackendRedis, "cache:6379", -1 }, field: "NARRATIVE_REDIS_POOL_SIZE"},
		{name: "sqlite path", mutate: func(c *config.Config) { c.ProgressBackend = config.BackendSQLite }, field: "NARRATIVE_SQLITE_PATH"},
		{name: "two content sources", mutate: func(c *config.Config) { c.ContentPath, c.ContentDB = "a.yaml", "b.db" }, field: "NARRATIVE_CONTENT_DB"},
		{name: "ttl", mutate: func(c *config.Config) { c.IdleTTL = 0 }, field: "NARRATIVE_SESSION_IDLE_TTL"},
		{name: "sweep", mutate: func(c *config.Config) { c.SweepInterval = -time.Second }, field: "NARRATIVE_SWEEP_INTERVAL"},
		{name: "log level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, field: "NARRATIVE_LOG_LEVEL"},
	}

	s.NoError(valid().Validate())

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.Contains(err.Error(), tc.field)
		})
	}
}
