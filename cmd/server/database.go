package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskwell-api/internal/config"
	"github.com/phrazzld/taskwell-api/internal/platform/mongostore"
	"github.com/phrazzld/taskwell-api/internal/platform/sqlstore"
	"go.mongodb.org/mongo-driver/mongo"
)

// setupAppDatabase opens the relational store and brings its schema up to date.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sqlstore.Open(ctx, cfg.Database.Driver, cfg.Database.URL, cfg.Database.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("failed to open relational store: %w", err)
	}

	if err := sqlstore.Migrate(ctx, db, cfg.Database.Driver, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate relational store: %w", err)
	}

	logger.Info("Database connection established", "driver", cfg.Database.Driver)
	return db, nil
}

// setupDocumentStore connects to MongoDB and creates the collection indexes.
func setupDocumentStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	client, err := mongostore.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.ConnectTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := mongostore.EnsureIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create document store indexes: %w", err)
	}

	logger.Info("Document store connection established", "database", cfg.Mongo.Database)
	return client, nil
}
