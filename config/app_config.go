// Package config loads the ledger core's configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DBConfig holds the store connection settings.
type DBConfig struct {
	Url          string `envconfig:"URL"`
	MaxOpenConns int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns int    `envconfig:"MAX_IDLE_CONNS" default:"25"`
}

// LogConfig controls the slog handler built in infra/initializer.
type LogConfig struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[netbank]"`
}

// LockRetryConfig bounds the internal retry on row-lock acquisition timeouts.
// Business-rule failures are never retried.
type LockRetryConfig struct {
	MaxRetries      uint64        `envconfig:"MAX_RETRIES" default:"3"`
	InitialInterval time.Duration `envconfig:"INITIAL_INTERVAL" default:"50ms"`
}

// AppConfig is the root configuration of the process.
type AppConfig struct {
	Env       string          `envconfig:"APP_ENV" default:"development"`
	DB        DBConfig        `envconfig:"DATABASE"`
	Log       LogConfig       `envconfig:"LOG"`
	LockRetry LockRetryConfig `envconfig:"LOCK_RETRY"`
}

// LoadAppConfig reads configuration from the environment. When envFilePath is
// given, that .env file is loaded first; otherwise ./.env is tried and its
// absence is not an error.
func LoadAppConfig(logger *slog.Logger, envFilePath ...string) (*AppConfig, error) {
	var err error
	if len(envFilePath) > 0 && envFilePath[0] != "" {
		err = godotenv.Load(envFilePath[0])
	} else {
		err = godotenv.Load()
	}

	if err != nil {
		logger.Warn("No .env file found or specified, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("App config loaded",
		"env", cfg.Env,
		"db_max_open_conns", cfg.DB.MaxOpenConns,
		"lock_retry_max", cfg.LockRetry.MaxRetries,
		"lock_retry_initial_interval", cfg.LockRetry.InitialInterval,
	)
	return &cfg, nil
}
