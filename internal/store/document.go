package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
)

// TaskDescriptionStore persists task descriptions in the document store.
// Task IDs are not checked against the relational store here; callers
// verify the task exists before writing.
type TaskDescriptionStore interface {
	// Create inserts a description.
	// Returns ErrTaskDescriptionExists if the task already has one.
	Create(ctx context.Context, td *domain.TaskDescription) error

	// ExistsForTask reports whether a description exists for the task.
	ExistsForTask(ctx context.Context, taskID uuid.UUID) (bool, error)

	// List returns every description, in no particular order.
	List(ctx context.Context) ([]*domain.TaskDescription, error)

	// ListByTaskIDs returns descriptions whose task ID is in taskIDs.
	// An empty taskIDs yields an empty result.
	ListByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.TaskDescription, error)
}

// ReflectionStore persists reflections in the document store.
type ReflectionStore interface {
	// Create inserts a reflection.
	Create(ctx context.Context, r *domain.Reflection) error

	// List returns every reflection, in no particular order.
	List(ctx context.Context) ([]*domain.Reflection, error)

	// ListByTaskIDs returns reflections whose task ID is in taskIDs.
	// An empty taskIDs yields an empty result.
	ListByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.Reflection, error)
}
