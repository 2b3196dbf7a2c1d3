package main

import (
	"fmt"
	"log/slog"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/config"
)

// loadAppConfig loads the application configuration from the optional config
// file and environment variables.
func loadAppConfig(configPath string) (*config.Config, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig records the effective configuration once the logger exists.
func logAppConfig(log *slog.Logger, cfg *config.Config) {
	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	log.Debug("Upstream configuration",
		"base_url", cfg.Upstream.BaseURL,
		"timeout", cfg.Upstream.Timeout.String(),
		"max_body_bytes", cfg.Upstream.MaxBodyBytes)

	log.Debug("Metrics configuration",
		"enabled", cfg.Metrics.Enabled,
		"path", cfg.Metrics.Path)
}
