package main

import (
	"net/http"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api"
	apiMiddleware "github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/middleware"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	if app.httpMetrics != nil {
		r.Use(app.httpMetrics.Handler)
	}
	r.Use(apiMiddleware.CORS())
	r.Use(apiMiddleware.Recoverer)

	pokemonHandler := api.NewPokemonHandler(app.lookupService)

	// Register routes
	r.Get("/", api.Welcome)
	r.Get("/health", api.Health)
	r.Get("/pokemon-info", pokemonHandler.GetPokemonInfo)

	if app.registry != nil {
		path := app.config.Metrics.Path
		if path == "" {
			path = config.DefaultMetricsPath
		}
		r.Method(http.MethodGet, path, promhttp.InstrumentMetricHandler(
			app.registry,
			promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}),
		))
	}

	// Unknown paths and unsupported methods share one answer
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.NotFound)

	return r
}
