package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/shared"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/service"
)

// Client-facing error messages. These strings are part of the public contract.
const (
	MsgNameRequired       = "Pokemon name is required"
	MsgInvalidName        = "Invalid Pokemon name"
	MsgPokemonNotFound    = "Pokemon not found"
	MsgServiceUnavailable = "Service temporarily unavailable"
	MsgExternalAPIError   = "External API error"
	MsgInternalError      = "Internal server error"
	MsgEndpointNotFound   = "Endpoint not found"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Client input errors
	case errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidName):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, service.ErrPokemonNotFound):
		return http.StatusNotFound

	// Upstream errors
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrUpstreamFailure):
		return http.StatusBadGateway

	// Default: internal server error (malformed payloads, unclassified failures)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return MsgNameRequired
	case errors.Is(err, domain.ErrInvalidName):
		return MsgInvalidName
	case errors.Is(err, service.ErrPokemonNotFound):
		return MsgPokemonNotFound
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return MsgServiceUnavailable
	case errors.Is(err, service.ErrUpstreamFailure):
		return MsgExternalAPIError
	default:
		return MsgInternalError
	}
}

// HandleAPIError writes the JSON error response for err and logs it with
// whatever lookup context the error carries.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)

	var attrs []slog.Attr
	var lookupErr *service.LookupError
	if errors.As(err, &lookupErr) {
		attrs = append(attrs,
			slog.String("pokemon_name", lookupErr.Name.String()),
			slog.String("outcome", lookupErr.Outcome.String()))
		if lookupErr.UpstreamStatus != 0 {
			attrs = append(attrs, slog.Int("upstream_status", lookupErr.UpstreamStatus))
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, attrs...)
}

// NotFound answers every request that matched no route.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, MsgEndpointNotFound)
}
