package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/taskwell-api/internal/platform/logger"
)

// ErrorHandler writes the failure response for err and records it.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// NewRecoverMiddleware turns a handler panic into an ordinary 500 failure
// passed to onError. Mount it after NewTraceMiddleware so the trace ID and
// request logger are in the context. http.ErrAbortHandler is re-panicked.
func NewRecoverMiddleware(onError ErrorHandler, base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContextOrDefault(r.Context(), base).Error("handler panicked",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())))

				onError(w, r, fmt.Errorf("panic: %v", rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
