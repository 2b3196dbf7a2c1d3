package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/api/shared"
	"github.com/Ramsaikolnati/PokeAPI-Gateway/internal/platform/logger"
)

// Recoverer turns a panic in a downstream handler into a logged
// 500 {"error":"Internal server error"} response.
//
// http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), nil).Error("panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())))

			shared.RespondWithError(w, r, http.StatusInternalServerError, api.MsgInternalError)
		}()

		next.ServeHTTP(w, r)
	})
}
