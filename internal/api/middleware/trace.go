package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/shared"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that gives every request a trace ID
// and a request-scoped logger.
//
// A client-supplied X-Trace-ID is reused when it is a valid UUID; otherwise a
// new one is generated. The ID is echoed in the X-Trace-ID response header and
// attached, with method and path, to the logger stored in the request context.
// It should be applied early so later handlers see both.
func NewTraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if traceID := shared.ParseTraceID(r.Header.Get(shared.TraceIDHeader)); traceID != "" {
				ctx = shared.WithTraceID(ctx, traceID)
			} else {
				ctx = shared.SetTraceID(ctx)
			}
			traceID := shared.GetTraceID(ctx)

			log := logger.FromContextOrDefault(ctx, base).With(
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			ctx = logger.WithLogger(ctx, log)

			w.Header().Set(shared.TraceIDHeader, traceID)

			log.Debug("request started", slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
