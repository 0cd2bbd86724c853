package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultReflectionType is used when a reflection is submitted without a type.
const DefaultReflectionType = "missed_task"

// ReflectionContent is the body of a reflection.
type ReflectionContent struct {
	Reason         string   `json:"reason"`
	Emotions       []string `json:"emotions"`
	LessonsLearned string   `json:"lessons_learned"`
	ActionItems    []string `json:"action_items"`
}

// Normalize returns a copy of c with nil lists replaced by empty ones and
// duplicate emotions removed. Emotion order is otherwise preserved.
func (c ReflectionContent) Normalize() ReflectionContent {
	out := ReflectionContent{
		Reason:         c.Reason,
		LessonsLearned: c.LessonsLearned,
		Emotions:       make([]string, 0, len(c.Emotions)),
		ActionItems:    make([]string, 0, len(c.ActionItems)),
	}

	seen := make(map[string]struct{}, len(c.Emotions))
	for _, e := range c.Emotions {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out.Emotions = append(out.Emotions, e)
	}
	out.ActionItems = append(out.ActionItems, c.ActionItems...)

	return out
}

// Reflection records what a user took away from a task, typically a missed one.
// A task may have any number of reflections.
type Reflection struct {
	TaskID         uuid.UUID         `json:"task_id"`
	ReflectionDate time.Time         `json:"reflection_date"`
	ReflectionType string            `json:"reflection_type"`
	Content        ReflectionContent `json:"content"`
}

// NewReflection creates a Reflection stamped at now. An empty reflection type
// defaults to DefaultReflectionType and the content is normalized.
func NewReflection(taskID uuid.UUID, reflectionType string, content ReflectionContent, now time.Time) (*Reflection, error) {
	reflectionType = strings.TrimSpace(reflectionType)
	if reflectionType == "" {
		reflectionType = DefaultReflectionType
	}

	r := &Reflection{
		TaskID:         taskID,
		ReflectionDate: now.UTC(),
		ReflectionType: reflectionType,
		Content:        content.Normalize(),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Reflection has valid data.
func (r *Reflection) Validate() error {
	if r.TaskID == uuid.Nil {
		return NewValidationError("task_id", "is required", ErrInvalidID)
	}
	if r.ReflectionDate.IsZero() {
		return NewValidationError("reflection_date", "is required", ErrInvalidDate)
	}
	return nil
}
