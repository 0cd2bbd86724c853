package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// TaskOwnershipResolver answers which tasks a user owns. User-scoped document
// queries resolve ownership through it first and then filter the document
// store by the returned IDs.
type TaskOwnershipResolver interface {
	TaskIDsOwnedBy(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type storeOwnershipResolver struct {
	tasks store.TaskStore
}

// NewTaskOwnershipResolver returns a resolver that queries tasks on every
// call. Nothing is cached, so results follow the latest ownership.
func NewTaskOwnershipResolver(tasks store.TaskStore) TaskOwnershipResolver {
	return &storeOwnershipResolver{tasks: tasks}
}

func (r *storeOwnershipResolver) TaskIDsOwnedBy(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.tasks.ListIDsByUser(ctx, userID)
}
