package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// MockTaskDescriptionStore implements store.TaskDescriptionStore for testing
type MockTaskDescriptionStore struct {
	CreateFn        func(ctx context.Context, td *domain.TaskDescription) error
	ExistsForTaskFn func(ctx context.Context, taskID uuid.UUID) (bool, error)
	ListFn          func(ctx context.Context) ([]*domain.TaskDescription, error)
	ListByTaskIDsFn func(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.TaskDescription, error)

	mu           sync.Mutex
	Descriptions []*domain.TaskDescription
	// ListByTaskIDsCalls counts calls that reached the default implementation.
	ListByTaskIDsCalls int
}

var _ store.TaskDescriptionStore = (*MockTaskDescriptionStore)(nil)

// NewMockTaskDescriptionStore creates a new mock task description store
func NewMockTaskDescriptionStore() *MockTaskDescriptionStore {
	return &MockTaskDescriptionStore{}
}

// Create implements the TaskDescriptionStore interface
func (m *MockTaskDescriptionStore) Create(ctx context.Context, td *domain.TaskDescription) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, td)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.Descriptions {
		if d.TaskID == td.TaskID {
			return store.ErrTaskDescriptionExists
		}
	}
	cp := *td
	m.Descriptions = append(m.Descriptions, &cp)
	return nil
}

// ExistsForTask implements the TaskDescriptionStore interface
func (m *MockTaskDescriptionStore) ExistsForTask(ctx context.Context, taskID uuid.UUID) (bool, error) {
	if m.ExistsForTaskFn != nil {
		return m.ExistsForTaskFn(ctx, taskID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.Descriptions {
		if d.TaskID == taskID {
			return true, nil
		}
	}
	return false, nil
}

// List implements the TaskDescriptionStore interface
func (m *MockTaskDescriptionStore) List(ctx context.Context) ([]*domain.TaskDescription, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.TaskDescription, len(m.Descriptions))
	copy(out, m.Descriptions)
	return out, nil
}

// ListByTaskIDs implements the TaskDescriptionStore interface
func (m *MockTaskDescriptionStore) ListByTaskIDs(
	ctx context.Context,
	taskIDs []uuid.UUID,
) ([]*domain.TaskDescription, error) {
	if m.ListByTaskIDsFn != nil {
		return m.ListByTaskIDsFn(ctx, taskIDs)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByTaskIDsCalls++
	want := idSet(taskIDs)
	out := make([]*domain.TaskDescription, 0)
	for _, d := range m.Descriptions {
		if _, ok := want[d.TaskID]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// MockReflectionStore implements store.ReflectionStore for testing
type MockReflectionStore struct {
	CreateFn        func(ctx context.Context, r *domain.Reflection) error
	ListFn          func(ctx context.Context) ([]*domain.Reflection, error)
	ListByTaskIDsFn func(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.Reflection, error)

	mu                 sync.Mutex
	Reflections        []*domain.Reflection
	ListByTaskIDsCalls int
}

var _ store.ReflectionStore = (*MockReflectionStore)(nil)

// NewMockReflectionStore creates a new mock reflection store
func NewMockReflectionStore() *MockReflectionStore {
	return &MockReflectionStore{}
}

// Create implements the ReflectionStore interface
func (m *MockReflectionStore) Create(ctx context.Context, r *domain.Reflection) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *r
	m.Reflections = append(m.Reflections, &cp)
	return nil
}

// List implements the ReflectionStore interface
func (m *MockReflectionStore) List(ctx context.Context) ([]*domain.Reflection, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Reflection, len(m.Reflections))
	copy(out, m.Reflections)
	return out, nil
}

// ListByTaskIDs implements the ReflectionStore interface
func (m *MockReflectionStore) ListByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.Reflection, error) {
	if m.ListByTaskIDsFn != nil {
		return m.ListByTaskIDsFn(ctx, taskIDs)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListByTaskIDsCalls++
	want := idSet(taskIDs)
	out := make([]*domain.Reflection, 0)
	for _, r := range m.Reflections {
		if _, ok := want[r.TaskID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
