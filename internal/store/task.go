package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
)

// TaskFilter narrows a role-scoped task list. Zero-valued fields are
// ignored. Mirrors the exact-match search fields of the list endpoint
// (project, priority, status, assignee username).
type TaskFilter struct {
	ProjectID        uuid.UUID
	Priority         domain.TaskPriority
	Status           domain.TaskStatus
	AssignedUsername string
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if a referenced project or actor is missing.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist or is deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// ListAssignedBy returns the non-deleted tasks originally assigned by
	// the given manager, newest first. Backs the manager's scoped list.
	ListAssignedBy(ctx context.Context, managerID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// ListAssignedTo returns the non-deleted tasks assigned to the given
	// employee, newest first. Backs the employee's scoped list.
	ListAssignedTo(ctx context.Context, actorID uuid.UUID, filter TaskFilter) ([]*domain.Task, error)

	// Update writes back a modified task. Partial-field merges are the
	// caller's job: read the current row, apply changes, write back.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// SoftDelete marks the task deleted without removing it, stamping the
	// deleting actor as modifier.
	// Returns ErrTaskNotFound if the task does not exist.
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}
