package mocks

import (
	"context"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
)

// MockLookupService implements service.LookupService for testing
type MockLookupService struct {
	LookupFn func(ctx context.Context, raw string) (domain.PokemonInfo, error)

	// Default return values
	Info         domain.PokemonInfo
	DefaultError error
}

// Lookup implements the LookupService.Lookup method
func (m *MockLookupService) Lookup(ctx context.Context, raw string) (domain.PokemonInfo, error) {
	if m.LookupFn != nil {
		return m.LookupFn(ctx, raw)
	}
	return m.Info, m.DefaultError
}
