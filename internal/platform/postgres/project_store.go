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

// ProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type ProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProjectStore creates a new PostgreSQL implementation of the
// ProjectStore interface.
func NewProjectStore(db store.DBTX, logger *slog.Logger) *ProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

// Ensure ProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*ProjectStore)(nil)

const projectColumns = `id, name, description, owner_id, created_at, modified_at, modified_by, is_deleted`

// Create implements store.ProjectStore.Create.
func (s *ProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during create",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return err
	}

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		project.ID,
		project.Name,
		project.Description,
		project.OwnerID,
		project.CreatedAt,
		project.ModifiedAt,
		project.ModifiedBy,
		project.IsDeleted,
	)
	if err != nil {
		log.Error("failed to create project",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return MapError(err)
	}

	if err := s.replaceMembers(ctx, project.ID, project.MemberIDs); err != nil {
		return err
	}

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner_id", project.OwnerID.String()))
	return nil
}

// GetByID implements store.ProjectStore.GetByID.
// Returns store.ErrProjectNotFound if the project does not exist or is deleted.
func (s *ProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1 AND is_deleted = FALSE
	`

	var project domain.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.OwnerID,
		&project.CreatedAt,
		&project.ModifiedAt,
		&project.ModifiedBy,
		&project.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return nil, MapError(err)
	}

	members, err := s.loadMembers(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	project.MemberIDs = members

	return &project, nil
}

// ListOwnedBy implements store.ProjectStore.ListOwnedBy.
func (s *ProjectStore) ListOwnedBy(ctx context.Context, ownerID uuid.UUID) ([]*domain.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE owner_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`
	return s.listProjects(ctx, query, ownerID)
}

// ListMemberOf implements store.ProjectStore.ListMemberOf.
func (s *ProjectStore) ListMemberOf(ctx context.Context, actorID uuid.UUID) ([]*domain.Project, error) {
	query := `
		SELECT ` + qualify(projectColumns, "p") + `
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.actor_id = $1 AND p.is_deleted = FALSE
		ORDER BY p.created_at DESC
	`
	return s.listProjects(ctx, query, actorID)
}

func (s *ProjectStore) listProjects(ctx context.Context, query string, arg any) ([]*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to list projects", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var projects []*domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.OwnerID,
			&project.CreatedAt,
			&project.ModifiedAt,
			&project.ModifiedBy,
			&project.IsDeleted,
		); err != nil {
			return nil, MapError(err)
		}
		projects = append(projects, &project)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	for _, project := range projects {
		members, err := s.loadMembers(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		project.MemberIDs = members
	}

	return projects, nil
}

// Update implements store.ProjectStore.Update.
// The member list is replaced wholesale with the one on the entity.
func (s *ProjectStore) Update(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE projects
		SET name = $2, description = $3, modified_at = $4, modified_by = $5
		WHERE id = $1 AND is_deleted = FALSE
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		project.ID,
		project.Name,
		project.Description,
		project.ModifiedAt,
		project.ModifiedBy,
	)
	if err != nil {
		log.Error("failed to update project",
			slog.String("error", err.Error()),
			slog.String("project_id", project.ID.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	return s.replaceMembers(ctx, project.ID, project.MemberIDs)
}

// SoftDelete implements store.ProjectStore.SoftDelete.
func (s *ProjectStore) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET is_deleted = TRUE, modified_at = NOW(), modified_by = $2
		WHERE id = $1 AND is_deleted = FALSE
	`, id, deletedBy)
	if err != nil {
		log.Error("failed to soft-delete project",
			slog.String("error", err.Error()),
			slog.String("project_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrProjectNotFound); err != nil {
		return err
	}

	log.Info("project soft-deleted", slog.String("project_id", id.String()))
	return nil
}

// WithTx implements store.ProjectStore.WithTx.
func (s *ProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &ProjectStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *ProjectStore) loadMembers(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT actor_id FROM project_members WHERE project_id = $1
	`, projectID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var members []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, MapError(err)
		}
		members = append(members, id)
	}
	return members, rows.Err()
}

func (s *ProjectStore) replaceMembers(ctx context.Context, projectID uuid.UUID, members []uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM project_members WHERE project_id = $1
	`, projectID); err != nil {
		return MapError(err)
	}

	for _, actorID := range members {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO project_members (project_id, actor_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, projectID, actorID); err != nil {
			return MapError(err)
		}
	}
	return nil
}
