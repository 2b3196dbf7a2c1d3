package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/config"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/domain"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/logger"
	"github.com/hashicorp/go-cleanhttp"
)

// drainLimit caps how much of an error body is read to let the connection
// be reused.
const drainLimit = 64 << 10

// Client fetches Pokemon documents from the upstream PokeAPI.
// It is safe for concurrent use; the only shared state is the connection pool.
type Client struct {
	baseURL      string
	timeout      time.Duration
	maxBodyBytes int64
	userAgent    string

	httpClient *http.Client
	metrics    *Metrics
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the pooled default HTTP client. Its redirect policy
// is overridden: the client never follows redirects.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a Client for the upstream described by cfg.
//
// Parameters:
//   - cfg: base URL, per-call timeout, body size limit and user agent
//   - logger: fallback logger used when the call context carries none
//   - opts: optional overrides (HTTP client, metrics)
//
// Returns:
//   - A ready Client, or an error wrapping ErrInvalidConfig
func NewClient(cfg config.UpstreamConfig, logger *slog.Logger, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%w: base URL %q is not an absolute URL", ErrInvalidConfig, cfg.BaseURL)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("%w: max body bytes must be positive", ErrInvalidConfig)
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		timeout:      cfg.Timeout,
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Transport: cleanhttp.DefaultPooledTransport()}
	}

	// A lookup is exactly one GET; a 3xx is answered as an unexpected status.
	hc := *c.httpClient
	hc.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	c.httpClient = &hc

	return c, nil
}

// FetchPokemon performs a single GET {base}/pokemon/{name} and classifies the
// outcome. The call is bounded by the client timeout and by ctx; cancelling
// ctx abandons the outbound request.
func (c *Client) FetchPokemon(ctx context.Context, name domain.NormalizedName) Result {
	start := time.Now()
	result := c.fetch(ctx, name)
	result.Duration = time.Since(start)

	c.metrics.observe(result)
	c.logResult(ctx, name, result)

	return result
}

// CloseIdleConnections releases pooled upstream connections.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) fetch(ctx context.Context, name domain.NormalizedName) Result {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/pokemon/" + url.PathEscape(name.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{Kind: OutcomeUnclassified, Err: fmt.Errorf("failed to build upstream request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Kind: classifyError(ctx, err), Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		drain(resp.Body)
		return Result{Kind: OutcomeNotFound, StatusCode: resp.StatusCode, Err: ErrNotFound}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		drain(resp.Body)
		return Result{
			Kind:       OutcomeServerError,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return Result{
			Kind:       classifyError(ctx, err),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("failed to read upstream body: %w", err),
		}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return Result{
			Kind:       OutcomeMalformed,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, c.maxBodyBytes),
		}
	}

	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{
			Kind:       OutcomeMalformed,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %v", ErrMalformedPayload, err),
		}
	}

	return Result{Kind: OutcomeSuccess, Payload: &payload, StatusCode: resp.StatusCode}
}

// classifyError separates deadline expiry from other failures below HTTP.
func classifyError(ctx context.Context, err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return OutcomeTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return OutcomeTimeout
	}
	return OutcomeTransportError
}

func drain(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, drainLimit))
}

func (c *Client) logResult(ctx context.Context, name domain.NormalizedName, r Result) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	attrs := []any{
		"pokemon_name", name.String(),
		"outcome", r.Kind.String(),
		"upstream_status", r.StatusCode,
		"duration_ms", r.Duration.Milliseconds(),
	}

	switch r.Kind {
	case OutcomeSuccess, OutcomeNotFound:
		log.DebugContext(ctx, "upstream lookup completed", attrs...)
	case OutcomeTimeout, OutcomeTransportError, OutcomeServerError:
		log.WarnContext(ctx, "upstream lookup failed", append(attrs, "error", r.Err)...)
	default:
		log.ErrorContext(ctx, "upstream lookup failed", append(attrs, "error", r.Err)...)
	}
}
