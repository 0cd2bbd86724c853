package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// ServiceError wraps unexpected failures with the operation that hit them.
type ServiceError struct {
	// Operation is the use case that failed (e.g. "add_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError wraps err in a ServiceError. Validation, not-found and
// duplicate errors are returned unchanged so callers can classify them.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if domain.IsValidationError(err) ||
		errors.Is(err, store.ErrNotFound) ||
		errors.Is(err, store.ErrDuplicate) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
