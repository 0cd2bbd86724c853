package domain

import (
	"strings"

	"github.com/google/uuid"
)

// TaskDescription is the free-form detail attached to a task. A task has at
// most one description.
type TaskDescription struct {
	TaskID      uuid.UUID `json:"task_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Steps       []string  `json:"steps"`
}

// NewTaskDescription creates a TaskDescription. Nil steps become an empty list.
func NewTaskDescription(taskID uuid.UUID, title, description string, steps []string) (*TaskDescription, error) {
	if steps == nil {
		steps = []string{}
	}

	td := &TaskDescription{
		TaskID:      taskID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Steps:       steps,
	}

	if err := td.Validate(); err != nil {
		return nil, err
	}

	return td, nil
}

// Validate checks that the description references a task and has a title.
func (td *TaskDescription) Validate() error {
	if td.TaskID == uuid.Nil {
		return NewValidationError("task_id", "is required", ErrInvalidID)
	}
	if td.Title == "" {
		return NewValidationError("title", "is required", nil)
	}
	return nil
}
