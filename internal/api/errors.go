package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/redact"
	"github.com/phrazzld/taskwell-api/internal/service"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case domain.IsValidationError(err),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// ClassifyError returns the audit trail class of err.
func ClassifyError(err error) domain.ErrorType {
	switch MapErrorToStatusCode(err) {
	case http.StatusBadRequest:
		return domain.ErrorTypeValidation
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeStore
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrTaskDescriptionExists):
		return "Task description already exists for this task"

	case errors.Is(err, store.ErrDuplicate):
		return "Entity already exists"

	default:
		return "An unexpected error occurred"
	}
}

// ErrorReporter writes failure responses and records each one in the error
// audit trail.
type ErrorReporter struct {
	recorder service.ErrorRecorder
}

// NewErrorReporter creates an ErrorReporter. A nil recorder disables the
// audit trail.
func NewErrorReporter(recorder service.ErrorRecorder) *ErrorReporter {
	return &ErrorReporter{recorder: recorder}
}

// HandleAPIError responds with the status and safe message for err, then
// records the failure once. Recording problems never alter the response.
func (e *ErrorReporter) HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)

	shared.RespondWithErrorAndLog(w, r, status, message, err)

	if e == nil || e.recorder == nil {
		return
	}

	auditMessage := message
	if status >= http.StatusInternalServerError {
		auditMessage = redact.Error(err)
	}
	e.recorder.Log(r.Context(), endpointOf(r), auditMessage, ClassifyError(err))
}

// endpointOf returns the matched route pattern, or the raw path when the
// request was not routed through chi.
func endpointOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}
