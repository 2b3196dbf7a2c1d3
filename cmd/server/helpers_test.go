package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/config"
	"github.com/stretchr/testify/require"
)

const dittoJSON = `{
	"name": "ditto",
	"types": [{"slot": 1, "type": {"name": "normal", "url": "https://pokeapi.co/api/v2/type/1/"}}],
	"height": 3,
	"weight": 40,
	"abilities": [
		{"is_hidden": false, "slot": 1, "ability": {"name": "limber"}},
		{"is_hidden": true, "slot": 3, "ability": {"name": "imposter"}}
	]
}`

// fakeUpstream is an httptest PokeAPI stand-in that counts the lookups it receives.
type fakeUpstream struct {
	*httptest.Server
	hits atomic.Int32
}

func newFakeUpstream(t *testing.T, handler http.HandlerFunc) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

// pokeAPIHandler serves ditto and answers 404 for anything else.
func pokeAPIHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/pokemon/ditto" {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, dittoJSON)
}

func testConfig(upstreamURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:              8080,
			LogLevel:          "debug",
			ShutdownTimeout:   5 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
		},
		Upstream: config.UpstreamConfig{
			BaseURL:      upstreamURL,
			Timeout:      2 * time.Second,
			MaxBodyBytes: 1 << 20,
			UserAgent:    "pokeapi-gateway-test",
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    config.DefaultMetricsPath,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	app, err := newApplication(cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

// doRequest sends one request through the full router.
func doRequest(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
