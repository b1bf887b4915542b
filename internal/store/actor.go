// Package store defines the persistence interfaces of the application.
//
// Implementations live under internal/platform; services depend only on
// these interfaces. All default queries exclude soft-deleted rows.
package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
)

// ActorStore defines the interface for actor data persistence.
type ActorStore interface {
	// Create saves a new actor to the store.
	// The caller must have hashed the password already.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain Actor if data is invalid.
	Create(ctx context.Context, actor *domain.Actor) error

	// GetByID retrieves an actor by their unique ID.
	// Returns ErrActorNotFound if the actor does not exist or is deleted.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error)

	// GetByUsername retrieves an actor by their username.
	// Returns ErrActorNotFound if the actor does not exist or is deleted.
	GetByUsername(ctx context.Context, username string) (*domain.Actor, error)

	// List returns all non-deleted actors, for the user directory.
	List(ctx context.Context) ([]*domain.Actor, error)

	// Update modifies an existing actor's details.
	// Returns ErrActorNotFound if the actor does not exist.
	Update(ctx context.Context, actor *domain.Actor) error

	// SoftDelete marks the actor deleted and clears task assignments that
	// reference them. The actor row itself is never removed.
	// Returns ErrActorNotFound if the actor does not exist.
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error

	// WithTx returns a new ActorStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) ActorStore
}
