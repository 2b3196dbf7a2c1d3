// Package pokeapi is the gateway's client for the upstream PokeAPI service.
//
// A Client issues exactly one GET per lookup, bounded by the configured
// timeout, and never returns a Go error: every call yields a Result whose
// Kind classifies the outcome (success, not found, timeout, transport error,
// upstream server error, malformed payload). Callers switch on Kind instead of
// inspecting error chains.
package pokeapi
