package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/platform/logger"
	"github.com/workdeck/workdeck-api/internal/store"
)

// ActorStore implements the store.ActorStore interface
// using a PostgreSQL database as the storage backend.
type ActorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewActorStore creates a new PostgreSQL implementation of the ActorStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
func NewActorStore(db store.DBTX, logger *slog.Logger) *ActorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ActorStore{
		db:     db,
		logger: logger.With(slog.String("component", "actor_store")),
	}
}

// Ensure ActorStore implements store.ActorStore interface
var _ store.ActorStore = (*ActorStore)(nil)

const actorColumns = `id, username, email, hashed_password, role, created_at, modified_at, modified_by, is_deleted`

// Create implements store.ActorStore.Create.
// Returns store.ErrUsernameExists if the username is already taken.
func (s *ActorStore) Create(ctx context.Context, actor *domain.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := actor.Validate(); err != nil {
		log.Warn("actor validation failed during create",
			slog.String("error", err.Error()),
			slog.String("actor_id", actor.ID.String()))
		return err
	}

	query := `
		INSERT INTO actors (` + actorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		actor.ID,
		actor.Username,
		actor.Email,
		actor.HashedPassword,
		actor.Role,
		actor.CreatedAt,
		actor.ModifiedAt,
		actor.ModifiedBy,
		actor.IsDeleted,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("username already exists",
				slog.String("actor_id", actor.ID.String()))
			return store.ErrUsernameExists
		}
		log.Error("failed to create actor",
			slog.String("error", err.Error()),
			slog.String("actor_id", actor.ID.String()))
		return MapError(err)
	}

	log.Info("actor created",
		slog.String("actor_id", actor.ID.String()),
		slog.String("role", string(actor.Role)))
	return nil
}

// GetByID implements store.ActorStore.GetByID.
// Returns store.ErrActorNotFound if the actor does not exist or is deleted.
func (s *ActorStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Actor, error) {
	query := `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE id = $1 AND is_deleted = FALSE
	`
	return s.scanActor(ctx, query, id)
}

// GetByUsername implements store.ActorStore.GetByUsername.
// Returns store.ErrActorNotFound if the actor does not exist or is deleted.
func (s *ActorStore) GetByUsername(ctx context.Context, username string) (*domain.Actor, error) {
	query := `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE username = $1 AND is_deleted = FALSE
	`
	return s.scanActor(ctx, query, username)
}

func (s *ActorStore) scanActor(ctx context.Context, query string, arg any) (*domain.Actor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var actor domain.Actor
	var role string

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&actor.ID,
		&actor.Username,
		&actor.Email,
		&actor.HashedPassword,
		&role,
		&actor.CreatedAt,
		&actor.ModifiedAt,
		&actor.ModifiedBy,
		&actor.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrActorNotFound
		}
		log.Error("failed to get actor", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	actor.Role = domain.Role(role)
	return &actor, nil
}

// List implements store.ActorStore.List.
func (s *ActorStore) List(ctx context.Context) ([]*domain.Actor, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE is_deleted = FALSE
		ORDER BY username
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list actors", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var actors []*domain.Actor
	for rows.Next() {
		var actor domain.Actor
		var role string
		if err := rows.Scan(
			&actor.ID,
			&actor.Username,
			&actor.Email,
			&actor.HashedPassword,
			&role,
			&actor.CreatedAt,
			&actor.ModifiedAt,
			&actor.ModifiedBy,
			&actor.IsDeleted,
		); err != nil {
			return nil, MapError(err)
		}
		actor.Role = domain.Role(role)
		actors = append(actors, &actor)
	}
	return actors, rows.Err()
}

// Update implements store.ActorStore.Update.
// Returns store.ErrActorNotFound if the actor does not exist.
func (s *ActorStore) Update(ctx context.Context, actor *domain.Actor) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := actor.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE actors
		SET username = $2, email = $3, hashed_password = $4, role = $5,
		    modified_at = $6, modified_by = $7
		WHERE id = $1 AND is_deleted = FALSE
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		actor.ID,
		actor.Username,
		actor.Email,
		actor.HashedPassword,
		actor.Role,
		actor.ModifiedAt,
		actor.ModifiedBy,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrUsernameExists
		}
		log.Error("failed to update actor",
			slog.String("error", err.Error()),
			slog.String("actor_id", actor.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrActorNotFound)
}

// SoftDelete implements store.ActorStore.SoftDelete.
// Task assignments referencing the actor are cleared; the tasks persist.
func (s *ActorStore) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE actors
		SET is_deleted = TRUE, modified_at = NOW(), modified_by = $2
		WHERE id = $1 AND is_deleted = FALSE
	`, id, deletedBy)
	if err != nil {
		log.Error("failed to soft-delete actor",
			slog.String("error", err.Error()),
			slog.String("actor_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrActorNotFound); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE tasks SET assigned_to = NULL WHERE assigned_to = $1
	`, id)
	if err != nil {
		return MapError(err)
	}
	_, err = s.db.ExecContext(ctx, `
		UPDATE tasks SET assigned_by = NULL WHERE assigned_by = $1
	`, id)
	if err != nil {
		return MapError(err)
	}

	log.Info("actor soft-deleted", slog.String("actor_id", id.String()))
	return nil
}

// WithTx implements store.ActorStore.WithTx.
func (s *ActorStore) WithTx(tx *sql.Tx) store.ActorStore {
	return &ActorStore{
		db:     tx,
		logger: s.logger,
	}
}
