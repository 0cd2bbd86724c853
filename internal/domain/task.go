package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusNotComplete TaskStatus = "not complete"
	TaskStatusCompleted   TaskStatus = "completed"
	TaskStatusMissed      TaskStatus = "missed"
)

// Rank bounds. Lower ranks sort first.
const (
	MinRank = 1
	MaxRank = 4
)

// DateLayout is the wire and storage format of a task due date.
const DateLayout = "2006-01-02"

// Task is a ranked, dated unit of work owned by a user.
type Task struct {
	ID        uuid.UUID  `json:"task_id"`
	UserID    uuid.UUID  `json:"user_id"`
	Rank      int        `json:"rank"`
	Status    TaskStatus `json:"status"`
	DueDate   time.Time  `json:"due_date"`
	CreatedAt time.Time  `json:"-"`
}

// TaskOwner holds the owner fields joined onto a task listing.
// All fields are nil when the owning user cannot be resolved.
type TaskOwner struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// TaskWithOwner is a task joined with minimal owner details.
type TaskWithOwner struct {
	Task
	Owner TaskOwner
}

// NewTask creates a new Task with a generated ID. An empty status defaults to
// TaskStatusNotComplete.
func NewTask(userID uuid.UUID, rank int, status TaskStatus, dueDate time.Time) (*Task, error) {
	if status == "" {
		status = TaskStatusNotComplete
	}

	task := &Task{
		ID:        uuid.New(),
		UserID:    userID,
		Rank:      rank,
		Status:    status,
		DueDate:   truncateToDate(dueDate),
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return NewValidationError("task_id", "is required", ErrInvalidID)
	}
	if t.UserID == uuid.Nil {
		return NewValidationError("user_id", "is required", ErrInvalidID)
	}
	if !IsValidRank(t.Rank) {
		return NewValidationError("rank", "must be between 1 and 4", ErrInvalidRank)
	}
	if !IsValidTaskStatus(t.Status) {
		return NewValidationError(
			"status",
			"must be one of 'not complete', 'completed', 'missed'",
			ErrInvalidTaskStatus,
		)
	}
	if t.DueDate.IsZero() {
		return NewValidationError("due_date", "is required", ErrInvalidDate)
	}
	return nil
}

// IsValidRank reports whether rank is within MinRank..MaxRank.
func IsValidRank(rank int) bool {
	return rank >= MinRank && rank <= MaxRank
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusNotComplete, TaskStatusCompleted, TaskStatusMissed:
		return true
	default:
		return false
	}
}

// ParseDueDate parses a due date given either as YYYY-MM-DD or as an RFC 3339
// timestamp. Timestamps are truncated to their UTC calendar date.
func ParseDueDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, NewValidationError("due_date", "is required", ErrInvalidDate)
	}

	if d, err := time.Parse(DateLayout, value); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return truncateToDate(ts), nil
	}

	return time.Time{}, NewValidationError("due_date", "must be a date in YYYY-MM-DD format", ErrInvalidDate)
}

func truncateToDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
