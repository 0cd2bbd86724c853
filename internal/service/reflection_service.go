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

// ReflectionService manages reflections recorded against tasks.
type ReflectionService interface {
	ListReflections(ctx context.Context) ([]*domain.Reflection, error)

	// ListUserReflections returns reflections on tasks the user owns.
	ListUserReflections(ctx context.Context, userID uuid.UUID) ([]*domain.Reflection, error)

	// AddReflection records a reflection dated now against an existing task.
	AddReflection(
		ctx context.Context,
		taskID uuid.UUID,
		reflectionType string,
		content domain.ReflectionContent,
	) (*domain.Reflection, error)
}

// Clock returns the current time.
type Clock func() time.Time

type reflectionServiceImpl struct {
	reflections store.ReflectionStore
	tasks       store.TaskStore
	resolver    TaskOwnershipResolver
	now         Clock
	logger      *slog.Logger
}

// NewReflectionService creates a new ReflectionService. A nil clock uses
// time.Now.
func NewReflectionService(
	reflections store.ReflectionStore,
	tasks store.TaskStore,
	resolver TaskOwnershipResolver,
	clock Clock,
	logger *slog.Logger,
) ReflectionService {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reflectionServiceImpl{
		reflections: reflections,
		tasks:       tasks,
		resolver:    resolver,
		now:         clock,
		logger:      logger.With("component", "reflection_service"),
	}
}

func (s *reflectionServiceImpl) ListReflections(ctx context.Context) ([]*domain.Reflection, error) {
	out, err := s.reflections.List(ctx)
	if err != nil {
		s.logger.Error("failed to list reflections", "error", err)
		return nil, NewServiceError("list_reflections", "failed to list reflections", err)
	}
	return out, nil
}

func (s *reflectionServiceImpl) ListUserReflections(ctx context.Context, userID uuid.UUID) ([]*domain.Reflection, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "is required", domain.ErrInvalidID)
	}

	taskIDs, err := s.resolver.TaskIDsOwnedBy(ctx, userID)
	if err != nil {
		s.logger.Error("failed to resolve task ownership", "error", err, "user_id", userID)
		return nil, NewServiceError("list_user_reflections", "failed to resolve tasks", err)
	}
	if len(taskIDs) == 0 {
		return []*domain.Reflection{}, nil
	}

	out, err := s.reflections.ListByTaskIDs(ctx, taskIDs)
	if err != nil {
		s.logger.Error("failed to list reflections", "error", err, "user_id", userID)
		return nil, NewServiceError("list_user_reflections", "failed to list reflections", err)
	}
	return out, nil
}

func (s *reflectionServiceImpl) AddReflection(
	ctx context.Context,
	taskID uuid.UUID,
	reflectionType string,
	content domain.ReflectionContent,
) (*domain.Reflection, error) {
	if taskID == uuid.Nil {
		return nil, domain.NewValidationError("task_id", "is required", domain.ErrInvalidID)
	}

	if _, err := s.tasks.GetByID(ctx, taskID); err != nil {
		if !errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Error("failed to load task", "error", err, "task_id", taskID)
		}
		return nil, NewServiceError("add_reflection", "failed to load task", err)
	}

	r, err := domain.NewReflection(taskID, reflectionType, content, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.reflections.Create(ctx, r); err != nil {
		s.logger.Error("failed to save reflection", "error", err, "task_id", taskID)
		return nil, NewServiceError("add_reflection", "failed to create reflection", err)
	}

	s.logger.Info("reflection recorded", "task_id", taskID, "reflection_type", r.ReflectionType)
	return r, nil
}
