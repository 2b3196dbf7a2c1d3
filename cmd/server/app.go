package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/middleware"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/config"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/pokeapi"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Metrics; registry and httpMetrics are nil when metrics are disabled
	registry    *prometheus.Registry
	httpMetrics *middleware.HTTPMetrics

	// Upstream client and the lookup pipeline built on it
	upstream      *pokeapi.Client
	lookupService service.LookupService
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger, opts ...pokeapi.Option) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.httpMetrics = middleware.NewHTTPMetrics(app.registry)
		opts = append(opts, pokeapi.WithMetrics(pokeapi.NewMetrics(app.registry)))
	}

	var err error
	app.upstream, err = pokeapi.NewClient(cfg.Upstream, logger.With("component", "pokeapi_client"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream client: %w", err)
	}

	app.lookupService, err = service.NewPokemonLookupService(app.upstream, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"upstream", cfg.Upstream.BaseURL,
		"metrics_enabled", cfg.Metrics.Enabled)
	return app, nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.upstream != nil {
		app.upstream.CloseIdleConnections()
	}

	app.logger.Info("Application shutdown completed")
}
