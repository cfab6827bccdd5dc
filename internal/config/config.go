// Package config loads the application configuration from the environment.
//
// Variables are read with the MARKET_ prefix; a double underscore separates
// the section from the key, e.g. MARKET_DATABASE__DSN -> database.dsn.
// A .env file in the working directory (or one of its parents, when the
// binary is started from cmd/server) is loaded first.
package config

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "MARKET_"

type Config struct {
	Primary   Primary         `koanf:"primary" validate:"required"`
	Server    ServerConfig    `koanf:"server" validate:"required"`
	Database  DatabaseConfig  `koanf:"database" validate:"required"`
	Session   SessionConfig   `koanf:"session" validate:"required"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production test"`
}

// ServerConfig timeouts are in seconds. TrustedProxies lists the IPs or
// CIDRs allowed to set X-Forwarded-For; it is read as a comma separated list.
type ServerConfig struct {
	Port            string   `koanf:"port" validate:"required"`
	ReadTimeout     int      `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout    int      `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout     int      `koanf:"idle_timeout" validate:"gte=0"`
	ShutdownTimeout int      `koanf:"shutdown_timeout" validate:"gte=0"`
	UploadDir       string   `koanf:"upload_dir" validate:"required"`
	TrustedProxies  []string `koanf:"trusted_proxies" validate:"dive,ip|cidr"`
}

// DatabaseConfig selects the gorm dialector and tunes the pool.
// ConnMaxLifetime is in seconds.
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=postgres mysql"`
	DSN             string `koanf:"dsn" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"`
	AutoMigrate     bool   `koanf:"auto_migrate"`
}

type SessionConfig struct {
	Name   string `koanf:"name" validate:"required"`
	Secret string `koanf:"secret" validate:"required,min=16"`
	MaxAge int    `koanf:"max_age" validate:"gte=0"`
	Secure bool   `koanf:"secure"`
}

// RateLimitConfig limits login attempts per client IP.
type RateLimitConfig struct {
	LoginPerMinute int `koanf:"login_per_minute" validate:"gte=0"`
	LoginBurst     int `koanf:"login_burst" validate:"gte=0"`
}

func (c *Config) IsProduction() bool {
	return c.Primary.Env == "production"
}

// Load reads .env files, the process environment, applies defaults and
// validates the result.
func Load() (*Config, error) {
	loadDotEnv(".env", "../.env", "../../.env")

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "load env")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return cfg, nil
}

// loadDotEnv loads every existing file; later files do not override
// earlier ones, and real environment variables win over all of them.
func loadDotEnv(paths ...string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		_ = godotenv.Load(p)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Primary.Env == "" {
		cfg.Primary.Env = "development"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Server.UploadDir == "" {
		cfg.Server.UploadDir = "uploads"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 25
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
	if cfg.Session.Name == "" {
		cfg.Session.Name = "mp_session"
	}
	if cfg.Session.MaxAge == 0 {
		cfg.Session.MaxAge = 86400 * 7
	}
	if cfg.RateLimit.LoginPerMinute == 0 {
		cfg.RateLimit.LoginPerMinute = 10
	}
	if cfg.RateLimit.LoginBurst == 0 {
		cfg.RateLimit.LoginBurst = 5
	}
}
