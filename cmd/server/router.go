package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/workdeck/workdeck-api/internal/api"
	apiMiddleware "github.com/workdeck/workdeck-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.actorStore,
		app.actorService,
		app.jwtService,
		app.passwordVerifier,
		app.tokenLifetime(),
	)
	actorHandler := api.NewActorHandler(app.actorService)
	projectHandler := api.NewProjectHandler(app.projectService)
	taskHandler := api.NewTaskHandler(app.taskService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.actorStore)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users", actorHandler.Directory)
			r.Get("/users/me", actorHandler.WhoAmI)
			r.Patch("/users/{id}", actorHandler.Update)

			r.Get("/projects", projectHandler.List)
			r.Post("/projects", projectHandler.Create)
			r.Get("/projects/{id}", projectHandler.Get)
			r.Patch("/projects/{id}", projectHandler.Update)
			r.Delete("/projects/{id}", projectHandler.Delete)

			r.Get("/tasks", taskHandler.List)
			r.Post("/tasks", taskHandler.Create)
			r.Post("/tasks/request", taskHandler.Request)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Patch("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
			r.Post("/tasks/{id}/approve", taskHandler.Approve)
			r.Post("/tasks/{id}/reject", taskHandler.Reject)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
