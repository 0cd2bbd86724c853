package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/platform/logger"
	"github.com/phrazzld/taskwell-api/internal/service"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	errors      *ErrorReporter
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, errors *ErrorReporter, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		errors:      errors,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	resp := TasksResponse{Tasks: make([]TaskWithOwnerResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskWithOwnerToResponse(t))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// ListUserTasks handles GET /api/user_tasks?user_id=
func (h *TaskHandler) ListUserTasks(w http.ResponseWriter, r *http.Request) {
	userID, err := getQueryUUID(r, "user_id")
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	tasks, err := h.taskService.ListUserTasks(r.Context(), userID)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	resp := UserTasksResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for _, t := range tasks {
		resp.Tasks = append(resp.Tasks, taskToResponse(t))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// AddTask handles POST /api/add_task
func (h *TaskHandler) AddTask(w http.ResponseWriter, r *http.Request) {
	var req AddTaskRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	userID, err := parseUUIDField("user_id", req.UserID)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}
	dueDate, err := domain.ParseDueDate(req.DueDate)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	task, err := h.taskService.AddTask(r.Context(), service.AddTaskInput{
		UserID:  userID,
		Rank:    *req.Rank,
		Status:  domain.TaskStatus(req.Status),
		DueDate: dueDate,
	})
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).
		Info("task added",
			slog.String("task_id", task.ID.String()),
			slog.String("user_id", task.UserID.String()))

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskCreatedResponse{
		Message: "Task added successfully",
		TaskID:  task.ID.String(),
	})
}
