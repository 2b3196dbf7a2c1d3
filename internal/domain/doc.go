// Package domain defines the gateway's core values: the normalized lookup
// name with its validation policy, the upstream Pokemon payload shape, and
// the flat PokemonInfo projection returned to clients.
package domain
