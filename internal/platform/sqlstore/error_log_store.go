package sqlstore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// ErrorLogStore implements store.ErrorLogStore on a relational database.
type ErrorLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.ErrorLogStore = (*ErrorLogStore)(nil)

// NewErrorLogStore creates an ErrorLogStore.
func NewErrorLogStore(db store.DBTX, logger *slog.Logger) *ErrorLogStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "error_log_store")),
	}
}

// Create implements store.ErrorLogStore.
func (s *ErrorLogStore) Create(ctx context.Context, entry *domain.ErrorLog) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO error_logs (log_id, endpoint, error_message, error_type, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Endpoint, entry.ErrorMessage, string(entry.ErrorType), entry.Timestamp,
	)
	if err != nil {
		return store.NewStoreError("error_log", "create", "failed to insert entry", MapError(err))
	}
	return nil
}

// List implements store.ErrorLogStore.
func (s *ErrorLogStore) List(ctx context.Context) ([]*domain.ErrorLog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT log_id, endpoint, error_message, error_type, created_at
		FROM error_logs
		ORDER BY created_at DESC, log_id`)
	if err != nil {
		return nil, store.NewStoreError("error_log", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	entries := make([]*domain.ErrorLog, 0)
	for rows.Next() {
		var (
			e         domain.ErrorLog
			errorType string
		)
		if err := rows.Scan(&e.ID, &e.Endpoint, &e.ErrorMessage, &errorType, &e.Timestamp); err != nil {
			return nil, store.NewStoreError("error_log", "list", "scan failed", err)
		}
		e.ErrorType = domain.ErrorType(errorType)
		e.Timestamp = e.Timestamp.UTC()
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("error_log", "list", "row iteration failed", err)
	}
	return entries, nil
}
