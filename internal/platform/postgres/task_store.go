package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/platform/logger"
	"github.com/workdeck/workdeck-api/internal/store"
)

// TaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

const taskColumns = `id, project_id, name, description, assigned_by, assigned_to, priority, status, eta, created_at, modified_at, modified_by, is_deleted`

// Create implements store.TaskStore.Create.
// Returns store.ErrInvalidEntity if the project or an assigned actor does
// not exist (foreign key violation).
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.ProjectID,
		task.Name,
		task.Description,
		task.AssignedBy,
		task.AssignedTo,
		task.Priority,
		task.Status,
		task.ETA,
		task.CreatedAt,
		task.ModifiedAt,
		task.ModifiedBy,
		task.IsDeleted,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("error", err.Error()),
				slog.String("task_id", task.ID.String()),
				slog.String("project_id", task.ProjectID.String()))
			return fmt.Errorf("%w: referenced project or actor not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError(err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", task.ProjectID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist or is deleted.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND is_deleted = FALSE
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, MapError(err)
	}

	return task, nil
}

// ListAssignedBy implements store.TaskStore.ListAssignedBy.
func (s *TaskStore) ListAssignedBy(
	ctx context.Context,
	managerID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	return s.list(ctx, "t.assigned_by = $1", managerID, filter)
}

// ListAssignedTo implements store.TaskStore.ListAssignedTo.
func (s *TaskStore) ListAssignedTo(
	ctx context.Context,
	actorID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	return s.list(ctx, "t.assigned_to = $1", actorID, filter)
}

// list builds the role-scoped query plus the optional exact-match filters.
func (s *TaskStore) list(
	ctx context.Context,
	scope string,
	scopeID uuid.UUID,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + qualify(taskColumns, "t") + `
		FROM tasks t
		WHERE ` + scope + ` AND t.is_deleted = FALSE
	`
	args := []any{scopeID}

	if filter.ProjectID != uuid.Nil {
		args = append(args, filter.ProjectID)
		query += fmt.Sprintf(" AND t.project_id = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND t.priority = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND t.status = $%d", len(args))
	}
	if filter.AssignedUsername != "" {
		args = append(args, filter.AssignedUsername)
		query += fmt.Sprintf(
			" AND t.assigned_to = (SELECT id FROM actors WHERE username = $%d)",
			len(args),
		)
	}

	query += " ORDER BY t.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET project_id = $2, name = $3, description = $4, assigned_by = $5,
		    assigned_to = $6, priority = $7, status = $8, eta = $9,
		    modified_at = $10, modified_by = $11
		WHERE id = $1 AND is_deleted = FALSE
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.ProjectID,
		task.Name,
		task.Description,
		task.AssignedBy,
		task.AssignedTo,
		task.Priority,
		task.Status,
		task.ETA,
		task.ModifiedAt,
		task.ModifiedBy,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: referenced project or actor not found",
				store.ErrInvalidEntity)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// SoftDelete implements store.TaskStore.SoftDelete.
func (s *TaskStore) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE tasks
		SET is_deleted = TRUE, modified_at = NOW(), modified_by = $2
		WHERE id = $1 AND is_deleted = FALSE
	`, id, deletedBy)
	if err != nil {
		log.Error("failed to soft-delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		return err
	}

	log.Info("task soft-deleted", slog.String("task_id", id.String()))
	return nil
}

// WithTx implements store.TaskStore.WithTx.
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var task domain.Task
	var priority, status string

	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Name,
		&task.Description,
		&task.AssignedBy,
		&task.AssignedTo,
		&priority,
		&status,
		&task.ETA,
		&task.CreatedAt,
		&task.ModifiedAt,
		&task.ModifiedBy,
		&task.IsDeleted,
	)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.TaskPriority(priority)
	task.Status = domain.TaskStatus(status)
	return &task, nil
}
