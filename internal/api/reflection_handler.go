package api

import (
	"net/http"

	"github.com/phrazzld/taskwell-api/internal/api/shared"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/service"
)

// ReflectionHandler handles reflection HTTP requests
type ReflectionHandler struct {
	service service.ReflectionService
	errors  *ErrorReporter
}

// NewReflectionHandler creates a new ReflectionHandler
func NewReflectionHandler(svc service.ReflectionService, errors *ErrorReporter) *ReflectionHandler {
	return &ReflectionHandler{service: svc, errors: errors}
}

// ListReflections handles GET /api/reflections
func (h *ReflectionHandler) ListReflections(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListReflections(r.Context())
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reflectionsResponse(out))
}

// ListUserReflections handles GET /api/user_reflections?user_id=
func (h *ReflectionHandler) ListUserReflections(w http.ResponseWriter, r *http.Request) {
	userID, err := getQueryUUID(r, "user_id")
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	out, err := h.service.ListUserReflections(r.Context(), userID)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reflectionsResponse(out))
}

// AddReflection handles POST /api/add_reflection
func (h *ReflectionHandler) AddReflection(w http.ResponseWriter, r *http.Request) {
	var req AddReflectionRequest
	if err := shared.DecodeAndValidate(r, &req); err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	taskID, err := parseUUIDField("task_id", req.TaskID)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	var content domain.ReflectionContent
	if req.Content != nil {
		content = domain.ReflectionContent{
			Reason:         req.Content.Reason,
			Emotions:       req.Content.Emotions,
			LessonsLearned: req.Content.LessonsLearned,
			ActionItems:    req.Content.ActionItems,
		}
	}

	reflection, err := h.service.AddReflection(r.Context(), taskID, req.ReflectionType, content)
	if err != nil {
		h.errors.HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskCreatedResponse{
		Message: "Reflection added successfully",
		TaskID:  reflection.TaskID.String(),
	})
}

func reflectionsResponse(in []*domain.Reflection) ReflectionsResponse {
	resp := ReflectionsResponse{Reflections: make([]ReflectionResponse, 0, len(in))}
	for _, r := range in {
		resp.Reflections = append(resp.Reflections, reflectionToResponse(r))
	}
	return resp
}
