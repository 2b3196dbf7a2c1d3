package mocks

import (
	"context"
	"sync"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/pokeapi"
)

// MockFetcher implements service.PokemonFetcher for testing
type MockFetcher struct {
	// Custom behavior function
	FetchPokemonFn func(ctx context.Context, name domain.NormalizedName) pokeapi.Result

	// Default return value
	Result pokeapi.Result

	mu    sync.Mutex
	calls []domain.NormalizedName
}

// FetchPokemon implements the PokemonFetcher.FetchPokemon method
func (m *MockFetcher) FetchPokemon(ctx context.Context, name domain.NormalizedName) pokeapi.Result {
	m.mu.Lock()
	m.calls = append(m.calls, name)
	m.mu.Unlock()

	if m.FetchPokemonFn != nil {
		return m.FetchPokemonFn(ctx, name)
	}
	return m.Result
}

// Calls returns the names FetchPokemon was called with, in order.
func (m *MockFetcher) Calls() []domain.NormalizedName {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.NormalizedName(nil), m.calls...)
}
