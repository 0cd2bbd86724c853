package mongostore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TaskDescriptionStore implements store.TaskDescriptionStore on MongoDB.
type TaskDescriptionStore struct {
	coll   collection
	logger *slog.Logger
}

var _ store.TaskDescriptionStore = (*TaskDescriptionStore)(nil)

// NewTaskDescriptionStore creates a store backed by the task_descriptions
// collection of db.
func NewTaskDescriptionStore(db *mongo.Database, logger *slog.Logger) *TaskDescriptionStore {
	return newTaskDescriptionStore(db.Collection(TaskDescriptionsCollection), logger)
}

func newTaskDescriptionStore(coll collection, logger *slog.Logger) *TaskDescriptionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskDescriptionStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "task_description_store")),
	}
}

// Create inserts td. The unique index on task_id turns a second description
// for the same task into store.ErrTaskDescriptionExists.
func (s *TaskDescriptionStore) Create(ctx context.Context, td *domain.TaskDescription) error {
	if err := td.Validate(); err != nil {
		return err
	}

	if _, err := s.coll.InsertOne(ctx, fromTaskDescription(td)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", store.ErrTaskDescriptionExists, err)
		}
		s.logger.ErrorContext(ctx, "failed to insert task description",
			slog.String("task_id", td.TaskID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("task_description", "create", "insert failed", err)
	}

	return nil
}

// ExistsForTask implements store.TaskDescriptionStore.
func (s *TaskDescriptionStore) ExistsForTask(ctx context.Context, taskID uuid.UUID) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"task_id": taskID.String()})
	if err != nil {
		return false, store.NewStoreError("task_description", "exists", "count failed", err)
	}
	return n > 0, nil
}

// List implements store.TaskDescriptionStore.
func (s *TaskDescriptionStore) List(ctx context.Context) ([]*domain.TaskDescription, error) {
	return s.find(ctx, bson.M{}, "list")
}

// ListByTaskIDs implements store.TaskDescriptionStore.
func (s *TaskDescriptionStore) ListByTaskIDs(
	ctx context.Context,
	taskIDs []uuid.UUID,
) ([]*domain.TaskDescription, error) {
	if len(taskIDs) == 0 {
		return []*domain.TaskDescription{}, nil
	}
	filter := bson.M{"task_id": bson.M{"$in": taskIDStrings(taskIDs)}}
	return s.find(ctx, filter, "list_by_task_ids")
}

func (s *TaskDescriptionStore) find(ctx context.Context, filter bson.M, op string) ([]*domain.TaskDescription, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, store.NewStoreError("task_description", op, "find failed", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*domain.TaskDescription, 0)
	for cur.Next(ctx) {
		var doc taskDescriptionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, store.NewStoreError("task_description", op, "decode failed", err)
		}
		td, err := doc.toDomain()
		if err != nil {
			s.logger.WarnContext(ctx, "skipping malformed task description",
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, td)
	}
	if err := cur.Err(); err != nil {
		return nil, store.NewStoreError("task_description", op, "cursor failed", err)
	}
	return out, nil
}
