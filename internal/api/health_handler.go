package api

import (
	"net/http"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/shared"
)

// Health handles GET /health. It never contacts the upstream.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}

// Welcome handles GET / with a short description of the gateway.
func Welcome(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, WelcomeResponse{
		Message: "Welcome to the PokéAPI Gateway!",
		Endpoints: map[string]string{
			"/health":                           "Check service health",
			"/pokemon-info?name={pokemon_name}": "Get simplified Pokémon info by name",
		},
	})
}
