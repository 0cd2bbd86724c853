package api

import (
	"time"

	"github.com/phrazzld/taskwell-api/internal/domain"
)

// Request payloads. Presence is checked by struct tags; ranges and enums are
// checked by the domain constructors.

// AddUserRequest defines the payload for POST /api/add_user.
// The password is stored as a bcrypt hash and never returned.
type AddUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required"`
	Password  string `json:"password"   validate:"required"`
}

// AddTaskRequest defines the payload for POST /api/add_task.
// Rank is a pointer so an explicit 0 reaches range validation instead of
// reading as missing.
type AddTaskRequest struct {
	UserID  string `json:"user_id"  validate:"required"`
	Rank    *int   `json:"rank"     validate:"required"`
	DueDate string `json:"due_date" validate:"required"`
	Status  string `json:"status"`
}

// AddTaskDescriptionRequest defines the payload for POST /api/add_task_description.
type AddTaskDescriptionRequest struct {
	TaskID      string   `json:"task_id"     validate:"required"`
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// ReflectionContentRequest is the optional content of a reflection.
type ReflectionContentRequest struct {
	Reason         string   `json:"reason"`
	Emotions       []string `json:"emotions"`
	LessonsLearned string   `json:"lessons_learned"`
	ActionItems    []string `json:"action_items"`
}

// AddReflectionRequest defines the payload for POST /api/add_reflection.
type AddReflectionRequest struct {
	TaskID         string                    `json:"task_id"         validate:"required"`
	ReflectionType string                    `json:"reflection_type"`
	Content        *ReflectionContentRequest `json:"content"`
}

// Response payloads.

// UserResponse is the public projection of a user. The password never
// leaves the store.
type UserResponse struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// UsersResponse wraps GET /api/users.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// FindUserResponse wraps GET /api/find_user.
type FindUserResponse struct {
	User UserResponse `json:"user"`
}

// UserCreatedResponse is returned by POST /api/add_user.
type UserCreatedResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// TaskCreatedResponse is returned by the endpoints that create task-keyed
// records.
type TaskCreatedResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"task_id"`
}

// TaskResponse is a single task.
type TaskResponse struct {
	TaskID  string `json:"task_id"`
	UserID  string `json:"user_id"`
	Rank    int    `json:"rank"`
	Status  string `json:"status"`
	DueDate string `json:"due_date"`
}

// TaskWithOwnerResponse is a task joined with its owner. Owner fields are
// null when the owner cannot be resolved.
type TaskWithOwnerResponse struct {
	TaskResponse
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

// TasksResponse wraps GET /api/tasks.
type TasksResponse struct {
	Tasks []TaskWithOwnerResponse `json:"tasks"`
}

// UserTasksResponse wraps GET /api/user_tasks.
type UserTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// TaskDescriptionResponse is a single task description.
type TaskDescriptionResponse struct {
	TaskID      string   `json:"task_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
}

// TaskDescriptionsResponse wraps the task description listings.
type TaskDescriptionsResponse struct {
	TaskDescriptions []TaskDescriptionResponse `json:"task_descriptions"`
}

// ReflectionContentResponse is the normalized content of a reflection.
type ReflectionContentResponse struct {
	Reason         string   `json:"reason"`
	Emotions       []string `json:"emotions"`
	LessonsLearned string   `json:"lessons_learned"`
	ActionItems    []string `json:"action_items"`
}

// ReflectionResponse is a single reflection.
type ReflectionResponse struct {
	TaskID         string                    `json:"task_id"`
	ReflectionDate time.Time                 `json:"reflection_date"`
	ReflectionType string                    `json:"reflection_type"`
	Content        ReflectionContentResponse `json:"content"`
}

// ReflectionsResponse wraps the reflection listings.
type ReflectionsResponse struct {
	Reflections []ReflectionResponse `json:"reflections"`
}

// ErrorLogResponse is a single audit trail entry.
type ErrorLogResponse struct {
	LogID        string    `json:"log_id"`
	Endpoint     string    `json:"endpoint"`
	ErrorMessage string    `json:"error_message"`
	ErrorType    string    `json:"error_type"`
	Timestamp    time.Time `json:"timestamp"`
}

// ErrorLogsResponse wraps GET /api/error_logs.
type ErrorLogsResponse struct {
	ErrorLogs []ErrorLogResponse `json:"error_logs"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:  t.ID.String(),
		UserID:  t.UserID.String(),
		Rank:    t.Rank,
		Status:  string(t.Status),
		DueDate: t.DueDate.Format(domain.DateLayout),
	}
}

func taskWithOwnerToResponse(t *domain.TaskWithOwner) TaskWithOwnerResponse {
	return TaskWithOwnerResponse{
		TaskResponse: taskToResponse(&t.Task),
		FirstName:    t.Owner.FirstName,
		LastName:     t.Owner.LastName,
		Email:        t.Owner.Email,
	}
}

func taskDescriptionToResponse(td *domain.TaskDescription) TaskDescriptionResponse {
	steps := td.Steps
	if steps == nil {
		steps = []string{}
	}
	return TaskDescriptionResponse{
		TaskID:      td.TaskID.String(),
		Title:       td.Title,
		Description: td.Description,
		Steps:       steps,
	}
}

func reflectionToResponse(r *domain.Reflection) ReflectionResponse {
	c := r.Content.Normalize()
	return ReflectionResponse{
		TaskID:         r.TaskID.String(),
		ReflectionDate: r.ReflectionDate.UTC(),
		ReflectionType: r.ReflectionType,
		Content: ReflectionContentResponse{
			Reason:         c.Reason,
			Emotions:       c.Emotions,
			LessonsLearned: c.LessonsLearned,
			ActionItems:    c.ActionItems,
		},
	}
}

func errorLogToResponse(e *domain.ErrorLog) ErrorLogResponse {
	return ErrorLogResponse{
		LogID:        e.ID.String(),
		Endpoint:     e.Endpoint,
		ErrorMessage: e.ErrorMessage,
		ErrorType:    string(e.ErrorType),
		Timestamp:    e.Timestamp.UTC(),
	}
}
