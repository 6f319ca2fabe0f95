package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Source backends the service can read the audit log from.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds all application configuration.
type Config struct {
	LogLevel        string  `env:"LOG_LEVEL" envDefault:"info"`
	SourceBackend   string  `env:"AUDIT_SOURCE_BACKEND" envDefault:"file"`
	AuditFilePath   string  `env:"AUDIT_FILE_PATH" envDefault:"data/audit.json"`
	PostgresURL     string  `env:"POSTGRES_URL"`
	RedisAddr       string  `env:"REDIS_ADDR"`
	APIServerAddr   string  `env:"API_SERVER_ADDR" envDefault:":8080"`
	AdminServerAddr string  `env:"ADMIN_SERVER_ADDR" envDefault:":9091"`
	RateLimitRPS    float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst  int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Attempt to load .env file for local development.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	switch cfg.SourceBackend {
	case BackendFile:
		if cfg.AuditFilePath == "" {
			return nil, fmt.Errorf("AUDIT_FILE_PATH is required for the file backend")
		}
	case BackendPostgres:
		if cfg.PostgresURL == "" {
			return nil, fmt.Errorf("POSTGRES_URL is required for the postgres backend")
		}
	case BackendRedis:
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	default:
		return nil, fmt.Errorf("unknown audit source backend %q", cfg.SourceBackend)
	}

	return cfg, nil
}
