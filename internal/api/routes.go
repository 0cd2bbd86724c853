package api

import (
	"github.com/go-chi/chi/v5"
)

// Handlers groups the JSON API handlers.
type Handlers struct {
	Users            *UserHandler
	Tasks            *TaskHandler
	TaskDescriptions *TaskDescriptionHandler
	Reflections      *ReflectionHandler
	ErrorLogs        *ErrorLogHandler
}

// Mount registers the JSON API under /api.
func (h *Handlers) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/users", h.Users.ListUsers)
		r.Get("/find_user", h.Users.FindUser)
		r.Post("/add_user", h.Users.AddUser)

		r.Get("/tasks", h.Tasks.ListTasks)
		r.Get("/user_tasks", h.Tasks.ListUserTasks)
		r.Post("/add_task", h.Tasks.AddTask)

		r.Get("/task_descriptions", h.TaskDescriptions.ListTaskDescriptions)
		r.Get("/user_task_descriptions", h.TaskDescriptions.ListUserTaskDescriptions)
		r.Post("/add_task_description", h.TaskDescriptions.AddTaskDescription)

		r.Get("/reflections", h.Reflections.ListReflections)
		r.Get("/user_reflections", h.Reflections.ListUserReflections)
		r.Post("/add_reflection", h.Reflections.AddReflection)

		r.Get("/error_logs", h.ErrorLogs.ListErrorLogs)
	})
}
