package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/ordercalc/internal/expr"
	"github.com/DjordjeVuckovic/ordercalc/internal/server"
	"github.com/DjordjeVuckovic/ordercalc/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type APIConfig struct {
	Server   *server.Config
	MaxDepth int
}

func (as *AppConfig) Load() (*APIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/ordercalc_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration from environment", "error", err)
		return nil, err
	}

	return &APIConfig{
		Server:   serverCfg,
		MaxDepth: env.Int("ORDERCALC_MAX_DEPTH", expr.DefaultMaxDepth),
	}, nil
}
