package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// TaskStore implements store.TaskStore on a relational database.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Create inserts a task. A missing owner surfaces as store.ErrUserNotFound.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (task_id, user_id, rank, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		task.ID, task.UserID, task.Rank, string(task.Status), task.DueDate, task.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", store.ErrUserNotFound, err)
		}
		s.logger.ErrorContext(ctx, "failed to insert task",
			slog.String("task_id", task.ID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("task", "create", "failed to insert task", MapError(err))
	}

	s.logger.DebugContext(ctx, "task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT task_id, user_id, rank, status, due_date, created_at
		FROM tasks
		WHERE task_id = $1`, id)

	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrTaskNotFound
		}
		return nil, store.NewStoreError("task", "get_by_id", "query failed", MapError(err))
	}
	return task, nil
}

// List returns every task left-joined with its owner.
func (s *TaskStore) List(ctx context.Context) ([]*domain.TaskWithOwner, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.task_id, t.user_id, t.rank, t.status, t.due_date, t.created_at,
		       u.first_name, u.last_name, u.email
		FROM tasks t
		LEFT JOIN users u ON u.user_id = t.user_id
		ORDER BY t.created_at, t.task_id`)
	if err != nil {
		return nil, store.NewStoreError("task", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.TaskWithOwner, 0)
	for rows.Next() {
		var (
			t                      domain.TaskWithOwner
			status                 string
			first, last, userEmail sql.NullString
		)
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.Rank, &status, &t.DueDate, &t.CreatedAt,
			&first, &last, &userEmail,
		); err != nil {
			return nil, store.NewStoreError("task", "list", "scan failed", err)
		}
		t.Status = domain.TaskStatus(status)
		t.DueDate = dateOnly(t.DueDate)
		t.CreatedAt = t.CreatedAt.UTC()
		t.Owner = domain.TaskOwner{
			FirstName: nullableString(first),
			LastName:  nullableString(last),
			Email:     nullableString(userEmail),
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list", "row iteration failed", err)
	}
	return tasks, nil
}

// ListByUser returns the user's tasks ordered by rank, due date and creation
// time.
func (s *TaskStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT task_id, user_id, rank, status, due_date, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY rank ASC, due_date ASC, created_at ASC, task_id ASC`, userID)
	if err != nil {
		return nil, store.NewStoreError("task", "list_by_user", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, store.NewStoreError("task", "list_by_user", "scan failed", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list_by_user", "row iteration failed", err)
	}
	return tasks, nil
}

// ListIDsByUser implements store.TaskStore.
func (s *TaskStore) ListIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT task_id FROM tasks WHERE user_id = $1`, userID)
	if err != nil {
		return nil, store.NewStoreError("task", "list_ids_by_user", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, store.NewStoreError("task", "list_ids_by_user", "scan failed", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "list_ids_by_user", "row iteration failed", err)
	}
	return ids, nil
}

func scanTask(scan func(dest ...any) error) (*domain.Task, error) {
	var (
		t      domain.Task
		status string
	)
	if err := scan(&t.ID, &t.UserID, &t.Rank, &status, &t.DueDate, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Status = domain.TaskStatus(status)
	t.DueDate = dateOnly(t.DueDate)
	t.CreatedAt = t.CreatedAt.UTC()
	return &t, nil
}

// dateOnly drops the clock and zone a driver may attach to a DATE column.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	v := ns.String
	return &v
}
