package domain

import (
	"time"

	"github.com/google/uuid"
)

// ErrorType classifies a failed request in the error audit trail.
type ErrorType string

// Error classes recorded in the audit trail.
const (
	ErrorTypeValidation ErrorType = "ValidationError"
	ErrorTypeConflict   ErrorType = "ConflictError"
	ErrorTypeNotFound   ErrorType = "NotFoundError"
	ErrorTypeStore      ErrorType = "StoreError"
)

// ErrorLog is a single append-only audit record of a failed operation.
type ErrorLog struct {
	ID           uuid.UUID `json:"log_id"`
	Endpoint     string    `json:"endpoint"`
	ErrorMessage string    `json:"error_message"`
	ErrorType    ErrorType `json:"error_type"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewErrorLog creates an ErrorLog entry stamped at now.
func NewErrorLog(endpoint, message string, errorType ErrorType, now time.Time) *ErrorLog {
	return &ErrorLog{
		ID:           uuid.New(),
		Endpoint:     endpoint,
		ErrorMessage: message,
		ErrorType:    errorType,
		Timestamp:    now.UTC(),
	}
}
