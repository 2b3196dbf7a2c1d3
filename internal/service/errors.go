package service

import (
	"errors"
	"fmt"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/pokeapi"
)

// Lookup errors - sentinel errors describing why a lookup did not produce a
// PokemonInfo. Callers check them with errors.Is; the API layer maps each one
// to exactly one HTTP status.
var (
	// ErrPokemonNotFound means the upstream has no Pokemon with the requested name.
	// API layer should map this to HTTP 404 Not Found.
	ErrPokemonNotFound = errors.New("pokemon not found")

	// ErrUpstreamUnavailable means the upstream timed out or could not be reached.
	// API layer should map this to HTTP 503 Service Unavailable.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamFailure means the upstream answered with an unexpected error status.
	// API layer should map this to HTTP 502 Bad Gateway.
	ErrUpstreamFailure = errors.New("upstream returned an error status")

	// ErrMalformedResponse means the upstream payload could not be decoded or projected.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrMalformedResponse = errors.New("malformed upstream response")

	// ErrUnclassified covers failures that fit no other category.
	// API layer should map this to HTTP 500 Internal Server Error.
	ErrUnclassified = errors.New("unclassified lookup failure")
)

// LookupError carries the diagnostic context of a failed upstream lookup.
// It matches both its Kind sentinel and its Cause under errors.Is.
type LookupError struct {
	Name           domain.NormalizedName
	Outcome        pokeapi.Outcome
	UpstreamStatus int
	Kind           error
	Cause          error
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("lookup %q: %v", e.Name, e.Kind)
	}
	return fmt.Sprintf("lookup %q: %v: %v", e.Name, e.Kind, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *LookupError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
