// Package service contains the gateway's single use case: looking up a
// Pokemon by name.
//
// The lookup runs three steps strictly in order: validate the raw name
// (domain.ValidateName), fetch it once from the upstream (a PokemonFetcher,
// normally *pokeapi.Client), and project the payload (domain.Project). The
// upstream's tagged Result is translated to sentinel errors in one exhaustive
// switch, so the API layer only ever sees:
//
//   - domain.ErrNameRequired / domain.ErrInvalidName for rejected input
//   - ErrPokemonNotFound when the upstream has no such Pokemon
//   - ErrUpstreamUnavailable for timeouts and transport failures
//   - ErrUpstreamFailure for unexpected upstream error statuses
//   - ErrMalformedResponse and ErrUnclassified for everything else
//
// The service holds no per-request state and is safe for concurrent use.
package service
