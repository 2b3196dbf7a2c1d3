package pokeapi

import (
	"errors"
	"time"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
)

// Payload is the decoded upstream document.
type Payload = domain.PokemonPayload

// Outcome classifies a single upstream call.
type Outcome int

// Possible outcomes of FetchPokemon. OutcomeUnclassified is the zero value
// and is only produced when a request could not even be built.
const (
	OutcomeUnclassified Outcome = iota
	OutcomeSuccess
	OutcomeNotFound
	OutcomeTimeout
	OutcomeTransportError
	OutcomeServerError
	OutcomeMalformed
)

// String returns the label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeServerError:
		return "server_error"
	case OutcomeMalformed:
		return "malformed"
	default:
		return "unclassified"
	}
}

// Errors carried in Result.Err for the non-transport outcomes.
var (
	ErrNotFound         = errors.New("pokemon not found upstream")
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	ErrMalformedPayload = errors.New("malformed upstream payload")
	ErrBodyTooLarge     = errors.New("upstream body exceeds size limit")
	ErrInvalidConfig    = errors.New("invalid pokeapi client configuration")
)

// Result is the tagged outcome of one upstream call. Payload is set only for
// OutcomeSuccess; Err is set for every other outcome. StatusCode is zero when
// no HTTP response was received.
type Result struct {
	Kind       Outcome
	Payload    *Payload
	StatusCode int
	Err        error
	Duration   time.Duration
}

// OK reports whether the call succeeded.
func (r Result) OK() bool {
	return r.Kind == OutcomeSuccess && r.Payload != nil
}
