package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Upstream UpstreamConfig `mapstructure:"upstream" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port              int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel          string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"required,gt=0"`
}

// UpstreamConfig describes the PokeAPI service the gateway forwards lookups to.
type UpstreamConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
	// Timeout bounds a single outbound call, including reading the body.
	Timeout      time.Duration `mapstructure:"timeout" validate:"required,gt=0"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes" validate:"required,gt=0"`
	UserAgent    string        `mapstructure:"user_agent" validate:"required"`
}

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"omitempty,startswith=/"`
}
