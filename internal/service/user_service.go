package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
)

// UserService provides user-related operations
type UserService interface {
	// ListUsers returns every user. Passwords and their hashes are never included.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// FindUser looks a user up by email or by ID. Email wins when both are
	// given; at least one is required.
	FindUser(ctx context.Context, email, userID string) (*domain.User, error)

	// AddUser registers a user and returns it with its generated ID.
	AddUser(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)
}

type userServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_service"),
	}
}

func (s *userServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, NewServiceError("list_users", "failed to list users", err)
	}
	for _, u := range users {
		u.Password = ""
		u.PasswordHash = ""
	}
	return users, nil
}

func (s *userServiceImpl) FindUser(ctx context.Context, email, userID string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	userID = strings.TrimSpace(userID)

	var (
		user *domain.User
		err  error
	)
	switch {
	case email != "":
		user, err = s.userStore.GetByEmail(ctx, email)
	case userID != "":
		id, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			return nil, domain.NewValidationError("user_id", "must be a valid UUID", domain.ErrInvalidID)
		}
		user, err = s.userStore.GetByID(ctx, id)
	default:
		return nil, domain.NewValidationError("email", "or user_id is required", nil)
	}

	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found", "email", email, "user_id", userID)
		} else {
			s.logger.Error("failed to find user", "error", err, "user_id", userID)
		}
		return nil, NewServiceError("find_user", "failed to find user", err)
	}

	user.Password = ""
	user.PasswordHash = ""
	return user, nil
}

func (s *userServiceImpl) AddUser(
	ctx context.Context,
	firstName, lastName, email, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(firstName, lastName, email, password)
	if err != nil {
		return nil, err
	}

	// The unique constraint still catches a concurrent insert that slips
	// past this check.
	if _, err := s.userStore.GetByEmail(ctx, user.Email); err == nil {
		s.logger.Debug("attempted to create user with existing email", "email", user.Email)
		return nil, store.ErrEmailExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check email availability", "error", err)
		return nil, NewServiceError("add_user", "failed to check email", err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to create user with existing email", "email", user.Email)
		} else {
			s.logger.Error("failed to save user", "error", err)
		}
		return nil, NewServiceError("add_user", "failed to create user", err)
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}
