package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/platform/logger"
	"github.com/phrazzld/taskwell-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService service.UserService
	errors      *ErrorReporter
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, errors *ErrorReporter, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		errors:      errors,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	resp := UsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, userToResponse(u))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// FindUser handles GET /api/find_user?email=|user_id=
func (h *UserHandler) FindUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	user, err := h.userService.FindUser(r.Context(), q.Get("email"), q.Get("user_id"))
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, FindUserResponse{User: userToResponse(user)})
}

// AddUser handles POST /api/add_user
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var req AddUserRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	user, err := h.userService.AddUser(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("user added", slog.String("user_id", user.ID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, UserCreatedResponse{
		Message: "User added successfully",
		UserID:  user.ID.String(),
	})
}
