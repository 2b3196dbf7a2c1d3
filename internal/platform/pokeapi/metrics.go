package pokeapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors describing upstream calls.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the upstream collectors and registers them with
// registry when it is non-nil.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pokeapi_gateway_upstream_requests_total",
			Help: "Total number of lookups sent to the upstream PokeAPI, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokeapi_gateway_upstream_request_duration_seconds",
			Help:    "Duration of upstream PokeAPI lookups, by outcome.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}

	if registry != nil {
		registry.MustRegister(m.requests, m.duration)
	}
	return m
}

func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	label := r.Kind.String()
	m.requests.WithLabelValues(label).Inc()
	m.duration.WithLabelValues(label).Observe(r.Duration.Seconds())
}
