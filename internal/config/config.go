package config

import (
	"flag"
	"regexp"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_URI"`
	AuthSecret  string `env:"AUTH_SECRET"`
	BaseURL     string `env:"BASE_URL"`

	// Connection/selection timeout for the initial database ping, seconds.
	DBTimeoutSec int `env:"DB_TIMEOUT"`

	LogLevel string `env:"LOG_LEVEL"`
}

// NewConfig reads .env (when present), then the environment, then flags as
// fallback for anything the environment left empty, then applies defaults.
func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN (empty: in-memory sqlite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "secret for signing the session cookie")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "listen address, host:port")
	flag.IntVar(&cfg.DBTimeoutSec, "db-timeout", cfg.DBTimeoutSec, "database connection timeout, seconds")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	flag.Parse()

	if cfg.AuthSecret == "" {
		cfg.AuthSecret = "dev-secret-key"
	}
	// BaseURL must be plain "address:port": no scheme, no path.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}
	if cfg.DBTimeoutSec <= 0 {
		cfg.DBTimeoutSec = 5
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

// DBTimeout is DBTimeoutSec as a duration.
func (c *Config) DBTimeout() time.Duration {
	return time.Duration(c.DBTimeoutSec) * time.Second
}
