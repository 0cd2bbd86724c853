package store

import (
	"context"

	"github.com/phrazzld/taskwell-api/internal/domain"
)

// ErrorLogStore persists the append-only error audit trail.
type ErrorLogStore interface {
	// Create appends an entry.
	Create(ctx context.Context, entry *domain.ErrorLog) error

	// List returns all entries, newest first.
	List(ctx context.Context) ([]*domain.ErrorLog, error)
}
