package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/logger"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/pokeapi"
)

// PokemonFetcher performs one upstream lookup for a validated name.
// *pokeapi.Client satisfies it.
type PokemonFetcher interface {
	FetchPokemon(ctx context.Context, name domain.NormalizedName) pokeapi.Result
}

// LookupService resolves a raw name into a PokemonInfo.
type LookupService interface {
	// Lookup validates raw, fetches the Pokemon upstream and projects the
	// result. Errors wrap domain.ErrNameRequired, domain.ErrInvalidName or
	// one of this package's sentinel errors.
	Lookup(ctx context.Context, raw string) (domain.PokemonInfo, error)
}

// PokemonLookupService implements LookupService on top of a PokemonFetcher.
type PokemonLookupService struct {
	fetcher PokemonFetcher
	logger  *slog.Logger
}

// NewPokemonLookupService creates a PokemonLookupService.
func NewPokemonLookupService(fetcher PokemonFetcher, logger *slog.Logger) (*PokemonLookupService, error) {
	if fetcher == nil {
		return nil, errors.New("fetcher cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &PokemonLookupService{
		fetcher: fetcher,
		logger:  logger.With("component", "lookup_service"),
	}, nil
}

// Lookup implements LookupService.
func (s *PokemonLookupService) Lookup(ctx context.Context, raw string) (domain.PokemonInfo, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	name, err := domain.ValidateName(raw)
	if err != nil {
		log.DebugContext(ctx, "rejected lookup name", "raw_name", raw, "error", err)
		return domain.PokemonInfo{}, err
	}

	result := s.fetcher.FetchPokemon(ctx, name)

	if err := classify(name, result); err != nil {
		return domain.PokemonInfo{}, err
	}

	info, err := domain.Project(*result.Payload)
	if err != nil {
		return domain.PokemonInfo{}, &LookupError{
			Name:           name,
			Outcome:        pokeapi.OutcomeMalformed,
			UpstreamStatus: result.StatusCode,
			Kind:           ErrMalformedResponse,
			Cause:          err,
		}
	}

	log.DebugContext(ctx, "lookup succeeded", "pokemon_name", name.String())
	return info, nil
}

// classify turns every non-success outcome into a LookupError. It returns
// nil only for a successful result that carries a payload.
func classify(name domain.NormalizedName, result pokeapi.Result) error {
	if result.OK() {
		return nil
	}

	var kind error
	switch result.Kind {
	case pokeapi.OutcomeSuccess:
		// success without a payload
		kind = ErrMalformedResponse
	case pokeapi.OutcomeNotFound:
		kind = ErrPokemonNotFound
	case pokeapi.OutcomeTimeout, pokeapi.OutcomeTransportError:
		kind = ErrUpstreamUnavailable
	case pokeapi.OutcomeServerError:
		kind = ErrUpstreamFailure
	case pokeapi.OutcomeMalformed:
		kind = ErrMalformedResponse
	default:
		kind = ErrUnclassified
	}

	return &LookupError{
		Name:           name,
		Outcome:        result.Kind,
		UpstreamStatus: result.StatusCode,
		Kind:           kind,
		Cause:          result.Err,
	}
}
