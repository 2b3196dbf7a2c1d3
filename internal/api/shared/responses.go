package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/logger"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/redact"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		requestLogger(r).Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code and message.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	requestLogger(r).Debug("sending error response",
		"status_code", status,
		"message", message,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Error: message})
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// Only userMessage reaches the client; the redacted error text goes to the logs.
//
// Log level strategy:
// - 5xx errors: ERROR, except 502/503 which describe the upstream and use WARN
// - 4xx errors: DEBUG
//
// attrs are appended to the log record, e.g. the lookup name or upstream status.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	attrs ...slog.Attr,
) {
	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}
	logAttrs = append(logAttrs, attrs...)

	logLevel := slog.LevelDebug
	switch {
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable:
		logLevel = slog.LevelWarn
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	}

	requestLogger(r).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Error: userMessage})
}

// requestLogger returns the request-scoped logger installed by the trace
// middleware, or the default logger tagged with the trace ID.
func requestLogger(r *http.Request) *slog.Logger {
	if log := logger.FromContext(r.Context()); log != nil {
		return log
	}
	log := slog.Default()
	if traceID := GetTraceID(r.Context()); traceID != "" {
		log = log.With("trace_id", traceID)
	}
	return log
}
