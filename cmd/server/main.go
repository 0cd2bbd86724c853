// Package main implements the entry point for the Taskwell API server,
// which stores users, tasks and the error audit trail in a relational
// database and task descriptions and reflections in MongoDB.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "apply relational schema migrations and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateOnly); err != nil {
		log.Fatalf("taskwell-api: %v", err)
	}
}

// run wires configuration, logging, both stores and the HTTP server, and
// blocks until ctx is cancelled or the server fails.
func run(ctx context.Context, migrateOnly bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if migrateOnly {
		logger.Info("migrations applied, exiting")
		return db.Close()
	}

	mongoClient, err := setupDocumentStore(ctx, cfg, logger)
	if err != nil {
		_ = db.Close()
		return err
	}

	app := newApplication(cfg, logger, db, mongoClient)
	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
