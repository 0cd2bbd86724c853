package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// AddTaskInput carries the fields of a new task. Status may be empty.
type AddTaskInput struct {
	UserID  uuid.UUID
	Rank    int
	Status  domain.TaskStatus
	DueDate time.Time
}

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks returns every task joined with its owner's name and email.
	ListTasks(ctx context.Context) ([]*domain.TaskWithOwner, error)

	// ListUserTasks returns the user's tasks ordered by rank, then due date.
	ListUserTasks(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error)

	// AddTask validates and stores a task for an existing user.
	AddTask(ctx context.Context, input AddTaskInput) (*domain.Task, error)
}

type taskServiceImpl struct {
	taskStore store.TaskStore
	userStore store.UserStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService
func NewTaskService(taskStore store.TaskStore, userStore store.UserStore, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskServiceImpl{
		taskStore: taskStore,
		userStore: userStore,
		logger:    logger.With("component", "task_service"),
	}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.TaskWithOwner, error) {
	tasks, err := s.taskStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err)
		return nil, NewServiceError("list_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) ListUserTasks(ctx context.Context, userID uuid.UUID) ([]*domain.Task, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required", domain.ErrInvalidID)
	}

	tasks, err := s.taskStore.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to list user tasks", "error", err, "user_id", userID)
		return nil, NewServiceError("list_user_tasks", "failed to list tasks", err)
	}
	return tasks, nil
}

func (s *taskServiceImpl) AddTask(ctx context.Context, input AddTaskInput) (*domain.Task, error) {
	// Rank, status and date are checked before any store access.
	task, err := domain.NewTask(input.UserID, input.Rank, input.Status, input.DueDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.userStore.GetByID(ctx, input.UserID); err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to load task owner", "error", err, "user_id", input.UserID)
		}
		return nil, NewServiceError("add_task", "failed to load user", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to save task", "error", err, "user_id", input.UserID)
		return nil, NewServiceError("add_task", "failed to create task", err)
	}

	s.logger.Info("task created", "task_id", task.ID, "user_id", task.UserID)
	return task, nil
}
