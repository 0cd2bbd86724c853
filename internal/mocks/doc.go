// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When a field is nil
// the mock falls back to a small in-memory implementation, so most tests only
// override the calls they care about:
//
//	tasks := mocks.NewMockTaskStore()
//	tasks.ListIDsByUserFn = func(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
//	    return nil, errors.New("connection refused")
//	}
//
// When adding a new mock to this package:
//  1. Create a new file named after the interface being mocked
//  2. Implement the mock struct with function fields for each interface method
//  3. Give it an in-memory default behavior that honors the interface contract
package mocks
