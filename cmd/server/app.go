package main

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/taskwell-api/internal/api"
	"github.com/phrazzld/taskwell-api/internal/config"
	"github.com/phrazzld/taskwell-api/internal/platform/mongostore"
	"github.com/phrazzld/taskwell-api/internal/platform/sqlstore"
	"github.com/phrazzld/taskwell-api/internal/service"
	"github.com/phrazzld/taskwell-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// readinessTimeout bounds the dependency pings behind /ready.
const readinessTimeout = 2 * time.Second

// appStores groups the persistence dependencies of the application.
type appStores struct {
	users        store.UserStore
	tasks        store.TaskStore
	errorLogs    store.ErrorLogStore
	descriptions store.TaskDescriptionStore
	reflections  store.ReflectionStore
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Connections, nil when the stores were supplied directly.
	db    *sql.DB
	mongo *mongo.Client

	handlers *api.Handlers
	errors   *api.ErrorReporter
	health   *api.HealthHandler
	static   *api.StaticHandler
}

// newApplication builds the stores over open connections and wires the
// services and handlers on top of them.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB, mongoClient *mongo.Client) *application {
	docs := mongoClient.Database(cfg.Mongo.Database)

	stores := appStores{
		users:        sqlstore.NewUserStore(db, cfg.Auth.BcryptCost, logger),
		tasks:        sqlstore.NewTaskStore(db, logger),
		errorLogs:    sqlstore.NewErrorLogStore(db, logger),
		descriptions: mongostore.NewTaskDescriptionStore(docs, logger),
		reflections:  mongostore.NewReflectionStore(docs, logger),
	}

	checks := map[string]api.HealthCheck{
		"relational": db.PingContext,
		"document": func(ctx context.Context) error {
			return mongostore.Ping(ctx, mongoClient)
		},
	}

	app := assembleApplication(cfg, logger, stores, checks)
	app.db = db
	app.mongo = mongoClient
	return app
}

// assembleApplication wires services and handlers over the given stores.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	stores appStores,
	checks map[string]api.HealthCheck,
) *application {
	resolver := service.NewTaskOwnershipResolver(stores.tasks)

	errorLogService := service.NewErrorLogService(stores.errorLogs, cfg.Server.ErrorLogTimeout, time.Now, logger)
	userService := service.NewUserService(stores.users, logger)
	taskService := service.NewTaskService(stores.tasks, stores.users, logger)
	descriptionService := service.NewTaskDescriptionService(stores.descriptions, stores.tasks, resolver, logger)
	reflectionService := service.NewReflectionService(stores.reflections, stores.tasks, resolver, time.Now, logger)

	reporter := api.NewErrorReporter(errorLogService)

	logger.Info("Application initialized successfully")

	return &application{
		config: cfg,
		logger: logger,
		errors: reporter,
		handlers: &api.Handlers{
			Users:            api.NewUserHandler(userService, reporter, logger),
			Tasks:            api.NewTaskHandler(taskService, reporter, logger),
			TaskDescriptions: api.NewTaskDescriptionHandler(descriptionService, reporter),
			Reflections:      api.NewReflectionHandler(reflectionService, reporter),
			ErrorLogs:        api.NewErrorLogHandler(errorLogService, reporter),
		},
		health: api.NewHealthHandler(checks, readinessTimeout, logger),
		static: api.NewStaticHandler(logger),
	}
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.mongo.Disconnect(ctx); err != nil {
			app.logger.Error("Error disconnecting from document store", "error", err)
		}
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
