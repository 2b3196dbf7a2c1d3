package api

import "github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"

// PokemonInfoResponse is the successful body of GET /pokemon-info.
type PokemonInfoResponse = domain.PokemonInfo

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// WelcomeResponse is the body of GET /, describing the available endpoints.
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
