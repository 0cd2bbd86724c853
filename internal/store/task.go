package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task.
	// Returns ErrUserNotFound if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns every task joined with its owner. Owner fields are nil
	// when the owner cannot be resolved.
	List(ctx context.Context) ([]*domain.TaskWithOwner, error)

	// ListByUser returns the user's tasks ordered by rank, then due date.
	// Returns an empty slice if the user owns no tasks.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// ListIDsByUser returns the IDs of all tasks owned by the user.
	ListIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
