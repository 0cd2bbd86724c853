package api

import (
	"net/http"

	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/service"
)

// ErrorLogHandler serves the error audit trail.
type ErrorLogHandler struct {
	service service.ErrorLogService
	errors  *ErrorReporter
}

// NewErrorLogHandler creates a new ErrorLogHandler
func NewErrorLogHandler(svc service.ErrorLogService, errors *ErrorReporter) *ErrorLogHandler {
	return &ErrorLogHandler{service: svc, errors: errors}
}

// ListErrorLogs handles GET /api/error_logs
func (h *ErrorLogHandler) ListErrorLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListErrorLogs(r.Context())
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	resp := ErrorLogsResponse{ErrorLogs: make([]ErrorLogResponse, 0, len(entries))}
	for _, e := range entries {
		resp.ErrorLogs = append(resp.ErrorLogs, errorLogToResponse(e))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
