package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// TaskDescriptionService manages the single description a task may carry.
type TaskDescriptionService interface {
	ListTaskDescriptions(ctx context.Context) ([]*domain.TaskDescription, error)

	// ListUserTaskDescriptions returns descriptions of tasks the user owns.
	ListUserTaskDescriptions(ctx context.Context, userID uuid.UUID) ([]*domain.TaskDescription, error)

	// AddTaskDescription attaches a description to an existing task. A second
	// description for the same task is rejected, never overwritten.
	AddTaskDescription(
		ctx context.Context,
		taskID uuid.UUID,
		title, description string,
		steps []string,
	) (*domain.TaskDescription, error)
}

type taskDescriptionServiceImpl struct {
	descriptions store.TaskDescriptionStore
	tasks        store.TaskStore
	resolver     TaskOwnershipResolver
	logger       *slog.Logger
}

// NewTaskDescriptionService creates a new TaskDescriptionService
func NewTaskDescriptionService(
	descriptions store.TaskDescriptionStore,
	tasks store.TaskStore,
	resolver TaskOwnershipResolver,
	logger *slog.Logger,
) TaskDescriptionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &taskDescriptionServiceImpl{
		descriptions: descriptions,
		tasks:        tasks,
		resolver:     resolver,
		logger:       logger.With("component", "task_description_service"),
	}
}

func (s *taskDescriptionServiceImpl) ListTaskDescriptions(ctx context.Context) ([]*domain.TaskDescription, error) {
	out, err := s.descriptions.List(ctx)
	if err != nil {
		s.logger.Error("failed to list task descriptions", "error", err)
		return nil, NewServiceError("list_task_descriptions", "failed to list task descriptions", err)
	}
	return out, nil
}

func (s *taskDescriptionServiceImpl) ListUserTaskDescriptions(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.TaskDescription, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required", domain.ErrInvalidID)
	}

	taskIDs, err := s.resolver.TaskIDsOwnedBy(ctx, userID)
	if err != nil {
		s.logger.Error("failed to resolve task ownership", "error", err, "user_id", userID)
		return nil, NewServiceError("list_user_task_descriptions", "failed to resolve tasks", err)
	}
	if len(taskIDs) == 0 {
		return []*domain.TaskDescription{}, nil
	}

	out, err := s.descriptions.ListByTaskIDs(ctx, taskIDs)
	if err != nil {
		s.logger.Error("failed to list task descriptions", "error", err, "user_id", userID)
		return nil, NewServiceError("list_user_task_descriptions", "failed to list task descriptions", err)
	}
	return out, nil
}

func (s *taskDescriptionServiceImpl) AddTaskDescription(
	ctx context.Context,
	taskID uuid.UUID,
	title, description string,
	steps []string,
) (*domain.TaskDescription, error) {
	td, err := domain.NewTaskDescription(taskID, title, description, steps)
	if err != nil {
		return nil, err
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to load task", "error", err, "task_id", taskID)
		}
		return nil, NewServiceError("add_task_description", "failed to load task", err)
	}

	exists, err := s.descriptions.ExistsForTask(ctx, taskID)
	if err != nil {
		s.logger.Error("failed to check existing description", "error", err, "task_id", taskID)
		return nil, NewServiceError("add_task_description", "failed to check existing description", err)
	}
	if exists {
		return nil, store.ErrTaskDescriptionExists
	}

	if err := s.descriptions.Create(ctx, td); err != nil {
		if !errors.Is(err, store.ErrTaskDescriptionExists) {
			s.logger.Error("failed to save task description", "error", err, "task_id", taskID)
		}
		return nil, NewServiceError("add_task_description", "failed to create task description", err)
	}

	s.logger.Info("task description created", "task_id", taskID)
	return td, nil
}
