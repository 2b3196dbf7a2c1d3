package api

import (
	"net/http"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/shared"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/service"
)

// PokemonHandler handles Pokemon lookup HTTP requests
type PokemonHandler struct {
	lookupService service.LookupService
}

// NewPokemonHandler creates a new PokemonHandler
func NewPokemonHandler(lookupService service.LookupService) *PokemonHandler {
	return &PokemonHandler{
		lookupService: lookupService,
	}
}

// GetPokemonInfo handles GET /pokemon-info?name={name} requests
func (h *PokemonHandler) GetPokemonInfo(w http.ResponseWriter, r *http.Request) {
	// An absent name and an empty one are the same to the lookup
	name := r.URL.Query().Get("name")

	info, err := h.lookupService.Lookup(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PokemonInfoResponse(info))
}
