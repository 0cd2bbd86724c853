// Package service contains the application use cases. Services validate
// input through the domain constructors, coordinate the relational and
// document stores, and return errors from a small taxonomy the API layer maps
// onto HTTP statuses:
//
//   - domain.ValidationError for missing or out-of-range input
//   - the store.ErrNotFound family when a referenced entity is absent
//   - the store.ErrDuplicate family on uniqueness conflicts
//   - *ServiceError wrapping anything unexpected
//
// Services depend only on the interfaces in internal/store.
package service
