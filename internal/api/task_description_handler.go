package api

import (
	"net/http"

	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/service"
)

// TaskDescriptionHandler handles task description HTTP requests
type TaskDescriptionHandler struct {
	service service.TaskDescriptionService
	errors  *ErrorReporter
}

// NewTaskDescriptionHandler creates a new TaskDescriptionHandler
func NewTaskDescriptionHandler(svc service.TaskDescriptionService, errors *ErrorReporter) *TaskDescriptionHandler {
	return &TaskDescriptionHandler{service: svc, errors: errors}
}

// ListTaskDescriptions handles GET /api/task_descriptions
func (h *TaskDescriptionHandler) ListTaskDescriptions(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListTaskDescriptions(r.Context())
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, descriptionsResponse(out))
}

// ListUserTaskDescriptions handles GET /api/user_task_descriptions?user_id=
func (h *TaskDescriptionHandler) ListUserTaskDescriptions(w http.ResponseWriter, r *http.Request) {
	userID, err := getQueryUUID(r, "user_id")
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	out, err := h.service.ListUserTaskDescriptions(r.Context(), userID)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, descriptionsResponse(out))
}

// AddTaskDescription handles POST /api/add_task_description
func (h *TaskDescriptionHandler) AddTaskDescription(w http.ResponseWriter, r *http.Request) {
	var req AddTaskDescriptionRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	taskID, err := parseUUIDField("task_id", req.TaskID)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	td, err := h.service.AddTaskDescription(r.Context(), taskID, req.Title, req.Description, req.Steps)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskCreatedResponse{
		Message: "Task description added successfully",
		TaskID:  td.TaskID.String(),
	})
}

func descriptionsResponse(in []*domain.TaskDescription) TaskDescriptionsResponse {
	resp := TaskDescriptionsResponse{TaskDescriptions: make([]TaskDescriptionResponse, 0, len(in))}
	for _, td := range in {
		resp.TaskDescriptions = append(resp.TaskDescriptions, taskDescriptionToResponse(td))
	}
	return resp
}
