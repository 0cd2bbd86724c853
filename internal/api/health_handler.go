package api

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/platform/logger"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// ReadyResponse is returned by GET /ready.
type ReadyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	checks  map[string]HealthCheck
	timeout time.Duration
	logger  *slog.Logger
}

// NewHealthHandler creates a HealthHandler that runs checks on /ready.
func NewHealthHandler(checks map[string]HealthCheck, timeout time.Duration, logger *slog.Logger) *HealthHandler {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		checks:  checks,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "health")),
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		h.logger.Error("failed to write health check response", "error", err)
	}
}

// Ready handles GET /ready. Checks run in name order; the first failure
// answers 503 naming the dependency but not the driver error.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			logger.FromContextOrDefault(r.Context(), h.logger).
				Warn("readiness check failed", "dependency", name, "error", err)
			shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, ReadyResponse{
				Status: "unavailable",
				Error:  name + " unavailable",
			})
			return
		}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ReadyResponse{Status: "ok"})
}
