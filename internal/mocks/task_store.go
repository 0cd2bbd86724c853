package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// The default implementation checks owners against Users when it is set.
type MockTaskStore struct {
	CreateFn        func(ctx context.Context, task *domain.Task) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFn          func(ctx context.Context) ([]*domain.TaskWithOwner, error)
	ListByUserFn    func(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)
	ListIDsByUserFn func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	Users *MockUserStore

	mu    sync.Mutex
	Tasks []*domain.Task
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a mock task store. Pass a user store to have the
// default Create and List resolve owners.
func NewMockTaskStore(users ...*MockUserStore) *MockTaskStore {
	m := &MockTaskStore{}
	if len(users) > 0 {
		m.Users = users[0]
	}
	return m
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if m.Users != nil {
		if _, err := m.Users.GetByID(ctx, task.UserID); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *task
	m.Tasks = append(m.Tasks, &cp)
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.Tasks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context) ([]*domain.TaskWithOwner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	tasks := append([]*domain.Task(nil), m.Tasks...)
	m.mu.Unlock()

	out := make([]*domain.TaskWithOwner, 0, len(tasks))
	for _, t := range tasks {
		row := &domain.TaskWithOwner{Task: *t}
		if m.Users != nil {
			if u, err := m.Users.GetByID(ctx, t.UserID); err == nil {
				row.Owner = domain.TaskOwner{
					FirstName: &u.FirstName,
					LastName:  &u.LastName,
					Email:     &u.Email,
				}
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// ListByUser implements the TaskStore interface
func (m *MockTaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Task, 0)
	for _, t := range m.Tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out, nil
}

// ListIDsByUser implements the TaskStore interface
func (m *MockTaskStore) ListIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.ListIDsByUserFn != nil {
		return m.ListIDsByUserFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]uuid.UUID, 0)
	for _, t := range m.Tasks {
		if t.UserID == userID {
			ids = append(ids, t.ID)
		}
	}
	return ids, nil
}
