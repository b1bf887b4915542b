package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
)

// ProjectStore defines the interface for project data persistence.
type ProjectStore interface {
	// Create saves a new project and its member list.
	// Returns validation errors from the domain Project if data is invalid.
	Create(ctx context.Context, project *domain.Project) error

	// GetByID retrieves a project with its members.
	// Returns ErrProjectNotFound if the project does not exist or is deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	// ListOwnedBy returns the non-deleted projects owned by the given
	// manager, newest first. This backs the manager's role-filtered list.
	ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error)

	// ListMemberOf returns the non-deleted projects that list the given
	// actor as a member, newest first. This backs the employee's list.
	ListMemberOf(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error)

	// Update modifies an existing project, replacing its member list.
	// Returns ErrProjectNotFound if the project does not exist.
	Update(ctx context.Context, project *domain.Project) error

	// SoftDelete marks the project deleted without removing it.
	// Returns ErrProjectNotFound if the project does not exist.
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error

	// WithTx returns a new ProjectStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) ProjectStore
}
