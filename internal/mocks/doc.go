// Package mocks holds test doubles for the lookup pipeline: MockFetcher
// stands in for the PokeAPI client below the service, MockLookupService for
// the service below the HTTP handlers.
//
// Each mock answers with its Fn field when set and with its default return
// values otherwise:
//
//	fetcher := &mocks.MockFetcher{
//	    Result: pokeapi.Result{Kind: pokeapi.OutcomeNotFound, StatusCode: 404},
//	}
//	svc, _ := service.NewPokemonLookupService(fetcher, logger)
//	_, err := svc.Lookup(ctx, "missingno")
//	// fetcher.Calls() == []domain.NormalizedName{"missingno"}
package mocks
