package mongostore

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type taskDescriptionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TaskID      string             `bson:"task_id"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Steps       []string           `bson:"steps"`
}

type reflectionContentDoc struct {
	Reason         string   `bson:"reason"`
	Emotions       []string `bson:"emotions"`
	LessonsLearned string   `bson:"lessons_learned"`
	ActionItems    []string `bson:"action_items"`
}

type reflectionDoc struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	TaskID         string               `bson:"task_id"`
	ReflectionDate time.Time            `bson:"reflection_date"`
	ReflectionType string               `bson:"reflection_type"`
	Content        reflectionContentDoc `bson:"content"`
}

func fromTaskDescription(td *domain.TaskDescription) taskDescriptionDoc {
	steps := td.Steps
	if steps == nil {
		steps = []string{}
	}
	return taskDescriptionDoc{
		TaskID:      td.TaskID.String(),
		Title:       td.Title,
		Description: td.Description,
		Steps:       steps,
	}
}

func (d taskDescriptionDoc) toDomain() (*domain.TaskDescription, error) {
	taskID, err := uuid.Parse(d.TaskID)
	if err != nil {
		return nil, fmt.Errorf("task description %s has invalid task_id %q: %w", d.ID.Hex(), d.TaskID, err)
	}
	steps := d.Steps
	if steps == nil {
		steps = []string{}
	}
	return &domain.TaskDescription{
		TaskID:      taskID,
		Title:       d.Title,
		Description: d.Description,
		Steps:       steps,
	}, nil
}

func fromReflection(r *domain.Reflection) reflectionDoc {
	content := r.Content.Normalize()
	return reflectionDoc{
		TaskID:         r.TaskID.String(),
		ReflectionDate: r.ReflectionDate.UTC(),
		ReflectionType: r.ReflectionType,
		Content: reflectionContentDoc{
			Reason:         content.Reason,
			Emotions:       content.Emotions,
			LessonsLearned: content.LessonsLearned,
			ActionItems:    content.ActionItems,
		},
	}
}

func (d reflectionDoc) toDomain() (*domain.Reflection, error) {
	taskID, err := uuid.Parse(d.TaskID)
	if err != nil {
		return nil, fmt.Errorf("reflection %s has invalid task_id %q: %w", d.ID.Hex(), d.TaskID, err)
	}
	content := domain.ReflectionContent{
		Reason:         d.Content.Reason,
		Emotions:       d.Content.Emotions,
		LessonsLearned: d.Content.LessonsLearned,
		ActionItems:    d.Content.ActionItems,
	}.Normalize()
	return &domain.Reflection{
		TaskID:         taskID,
		ReflectionDate: d.ReflectionDate.UTC(),
		ReflectionType: d.ReflectionType,
		Content:        content,
	}, nil
}

func taskIDStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
