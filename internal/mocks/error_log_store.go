package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// MockErrorLogStore implements store.ErrorLogStore for testing
type MockErrorLogStore struct {
	CreateFn func(ctx context.Context, entry *domain.ErrorLog) error
	ListFn   func(ctx context.Context) ([]*domain.ErrorLog, error)

	mu      sync.Mutex
	Entries []*domain.ErrorLog
}

var _ store.ErrorLogStore = (*MockErrorLogStore)(nil)

// NewMockErrorLogStore creates a new mock error log store
func NewMockErrorLogStore() *MockErrorLogStore {
	return &MockErrorLogStore{}
}

// Create implements the ErrorLogStore interface
func (m *MockErrorLogStore) Create(ctx context.Context, entry *domain.ErrorLog) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, entry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *entry
	m.Entries = append(m.Entries, &cp)
	return nil
}

// List implements the ErrorLogStore interface
func (m *MockErrorLogStore) List(ctx context.Context) ([]*domain.ErrorLog, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.ErrorLog, len(m.Entries))
	copy(out, m.Entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

// Snapshot returns a copy of the recorded entries in insertion order.
func (m *MockErrorLogStore) Snapshot() []*domain.ErrorLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.ErrorLog, len(m.Entries))
	copy(out, m.Entries)
	return out
}
