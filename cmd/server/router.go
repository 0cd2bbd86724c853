package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	apiMiddleware "github.com/phrazzld/taskwell-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.NewRecoverMiddleware(app.errors.HandleAPIError, app.logger))

	r.Get("/", app.static.Index)
	r.Handle("/static/*", app.static.Assets())

	r.Get("/health", app.health.Health)
	r.Get("/ready", app.health.Ready)

	app.handlers.Mount(r)

	return r
}
