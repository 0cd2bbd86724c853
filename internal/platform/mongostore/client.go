package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	TaskDescriptionsCollection = "task_descriptions"
	ReflectionsCollection      = "reflections"
)

// Connect opens a client for uri and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := Ping(connectCtx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client, nil
}

// Ping checks that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongodb: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes the stores rely on. It is idempotent.
// The unique index on task_descriptions.task_id enforces one description
// per task.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(TaskDescriptionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "task_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("task_id_unique"),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %w", TaskDescriptionsCollection, err)
	}

	_, err = db.Collection(ReflectionsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "task_id", Value: 1}},
		Options: options.Index().SetName("task_id"),
	})
	if err != nil {
		return fmt.Errorf("create %s index: %w", ReflectionsCollection, err)
	}

	return nil
}

// collection is the subset of *mongo.Collection the stores use.
type collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
}

var _ collection = (*mongo.Collection)(nil)
