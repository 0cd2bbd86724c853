package mongostore

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/taskwell-api/internal/domain"
	"github.com/phrazzld/taskwell-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReflectionStore implements store.ReflectionStore on MongoDB.
type ReflectionStore struct {
	coll   collection
	logger *slog.Logger
}

var _ store.ReflectionStore = (*ReflectionStore)(nil)

// NewReflectionStore creates a store backed by the reflections collection
// of db.
func NewReflectionStore(db *mongo.Database, logger *slog.Logger) *ReflectionStore {
	return newReflectionStore(db.Collection(ReflectionsCollection), logger)
}

func newReflectionStore(coll collection, logger *slog.Logger) *ReflectionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReflectionStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "reflection_store")),
	}
}

// Create implements store.ReflectionStore.
func (s *ReflectionStore) Create(ctx context.Context, r *domain.Reflection) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if _, err := s.coll.InsertOne(ctx, fromReflection(r)); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert reflection",
			slog.String("task_id", r.TaskID.String()),
			slog.String("error", err.Error()))
		return store.NewStoreError("reflection", "create", "insert failed", err)
	}
	return nil
}

// List implements store.ReflectionStore.
func (s *ReflectionStore) List(ctx context.Context) ([]*domain.Reflection, error) {
	return s.find(ctx, bson.M{}, "list")
}

// ListByTaskIDs implements store.ReflectionStore.
func (s *ReflectionStore) ListByTaskIDs(ctx context.Context, taskIDs []uuid.UUID) ([]*domain.Reflection, error) {
	if len(taskIDs) == 0 {
		return []*domain.Reflection{}, nil
	}
	filter := bson.M{"task_id": bson.M{"$in": taskIDStrings(taskIDs)}}
	return s.find(ctx, filter, "list_by_task_ids")
}

func (s *ReflectionStore) find(ctx context.Context, filter bson.M, op string) ([]*domain.Reflection, error) {
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, store.NewStoreError("reflection", op, "find failed", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make([]*domain.Reflection, 0)
	for cur.Next(ctx) {
		var doc reflectionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, store.NewStoreError("reflection", op, "decode failed", err)
		}
		r, err := doc.toDomain()
		if err != nil {
			s.logger.WarnContext(ctx, "skipping malformed reflection",
				slog.String("error", err.Error()))
			continue
		}
		out = append(out, r)
	}
	if err := cur.Err(); err != nil {
		return nil, store.NewStoreError("reflection", op, "cursor failed", err)
	}
	return out, nil
}
