package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/workdeck/workdeck-api/internal/config"
	"github.com/workdeck/workdeck-api/internal/platform/clock"
	"github.com/workdeck/workdeck-api/internal/platform/postgres"
	"github.com/workdeck/workdeck-api/internal/service/auth"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
	"github.com/workdeck/workdeck-api/internal/store"
)

// application holds the wired dependencies for the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	actorStore   store.ActorStore
	projectStore store.ProjectStore
	taskStore    store.TaskStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	actorService   *workflow.ActorService
	projectService *workflow.ProjectService
	taskService    *workflow.TaskService
}

// newApplication wires stores and services on top of the given database
// connection. The logger must already be configured.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	verifier := auth.NewBcryptVerifier(cfg.Auth.BcryptCost)

	actorStore := postgres.NewActorStore(db, logger)
	projectStore := postgres.NewProjectStore(db, logger)
	taskStore := postgres.NewTaskStore(db, logger)

	clk := clock.New()

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		actorStore:       actorStore,
		projectStore:     projectStore,
		taskStore:        taskStore,
		jwtService:       jwtService,
		passwordVerifier: verifier,
		actorService:     workflow.NewActorService(actorStore, verifier, logger),
		projectService:   workflow.NewProjectService(projectStore, logger),
		taskService:      workflow.NewTaskService(taskStore, projectStore, clk, logger),
	}, nil
}

// tokenLifetime returns the configured access token lifetime.
func (app *application) tokenLifetime() time.Duration {
	return time.Duration(app.config.Auth.TokenLifetimeMinutes) * time.Minute
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
