// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ianto3/projectboard/internal/adapters/http/handlers"
	"github.com/ianto3/projectboard/internal/adapters/http/middleware"
)

// Routes bundles the handlers the router mounts.
type Routes struct {
	Board    *handlers.BoardHandler
	Events   *handlers.EventsHandler
	Projects *handlers.ProjectHandler
	Health   *handlers.HealthHandler
	Static   fs.FS
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Every route except the
// event stream additionally runs under a requestTimeout deadline; zero
// disables it.
func NewRouter(routes Routes, requestTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// The event stream stays open for the life of the page.
	r.Get("/events", routes.Events.Stream)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Chain(timeout(requestTimeout)))

		// Health endpoints (outside /api/v1 prefix).
		r.Get("/health/live", routes.Health.Liveness)
		r.Get("/health/ready", routes.Health.Readiness)

		// Board pages.
		r.Get("/", routes.Board.Index)
		r.Post("/projects", routes.Board.SubmitProject)
		r.Post("/lists/{status}/drop", routes.Board.Drop)
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(routes.Static)))

		// API v1 routes.
		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/projects", routes.Projects.ListProjects)
			r.Post("/projects", routes.Projects.CreateProject)
			r.Get("/projects/{id}", routes.Projects.GetProject)
			r.Put("/projects/{id}/status", routes.Projects.MoveProject)
		})
	})

	return r
}

// timeout returns the per-group deadline middleware, or nil when d is not
// positive.
func timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return nil
	}
	return middleware.Timeout(d)
}
