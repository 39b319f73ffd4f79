package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/rpn/internal/storage/factory"
	"github.com/DjordjeVuckovic/rpn/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type RpnApiConfig struct {
	StorageConfig factory.StorageConfig
	LogLevel      slog.Level
}

func (as *AppConfig) Load() (*RpnApiConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/rpn_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &RpnApiConfig{
		StorageConfig: *storageCfg,
		LogLevel:      env.ParseLogLevel(os.Getenv("LOG_LEVEL")),
	}, nil
}
