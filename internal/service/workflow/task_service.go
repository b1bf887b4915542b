package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/domain/authz"
	"github.com/workdeck/workdeck-api/internal/domain/schedule"
	"github.com/workdeck/workdeck-api/internal/platform/clock"
	"github.com/workdeck/workdeck-api/internal/platform/logger"
	"github.com/workdeck/workdeck-api/internal/store"
)

// TaskView pairs a task with its derived scheduling metrics. Metrics are
// recomputed from the clock on every read and never cached.
type TaskView struct {
	Task    *domain.Task
	Metrics schedule.Metrics
}

// CreateTaskInput carries the caller-supplied fields for a new task.
type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description string
	AssignedTo  *uuid.UUID
	Priority    domain.TaskPriority // empty means default (medium)
	Status      domain.TaskStatus   // empty means default (todo)
	ETA         *time.Time
}

// UpdateTaskInput carries a partial task update. Nil fields are left
// unchanged on the stored entity.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	AssignedTo  *uuid.UUID
	Priority    *domain.TaskPriority
	Status      *domain.TaskStatus
	ETA         *time.Time
}

// RequestTaskInput carries an employee's task request. Status and assignment
// fields are deliberately absent: the workflow forces them.
type RequestTaskInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description string
	Priority    domain.TaskPriority
	ETA         *time.Time
}

// TaskService orchestrates the task lifecycle: role-scoped reads with
// metrics, gated CRUD, and the three named transitions (employee request,
// manager approve, manager reject).
type TaskService struct {
	tasks    store.TaskStore
	projects store.ProjectStore
	policy   authz.TaskPolicy
	clock    clock.Clock
	logger   *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	tasks store.TaskStore,
	projects store.ProjectStore,
	clk clock.Clock,
	logger *slog.Logger,
) *TaskService {
	if tasks == nil {
		panic("tasks cannot be nil")
	}
	if projects == nil {
		panic("projects cannot be nil")
	}
	if clk == nil {
		panic("clock cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskService{
		tasks:    tasks,
		projects: projects,
		policy:   authz.NewTaskPolicy(),
		clock:    clk,
		logger:   logger.With(slog.String("component", "task_service")),
	}
}

// List returns the tasks visible to the actor with metrics attached:
// tasks the manager assigned, or tasks assigned to the employee.
func (s *TaskService) List(
	ctx context.Context,
	actor *domain.Actor,
	filter store.TaskFilter,
) ([]TaskView, error) {
	if dec := s.policy.Permit(actor, authz.ActionList); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	var tasks []*domain.Task
	var err error
	switch actor.Role {
	case domain.RoleManager:
		tasks, err = s.tasks.ListAssignedBy(ctx, actor.ID, filter)
	case domain.RoleEmployee:
		tasks, err = s.tasks.ListAssignedTo(ctx, actor.ID, filter)
	default:
		return nil, forbidden(authz.ReasonUnknownRole)
	}
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, TaskView{
			Task:    task,
			Metrics: schedule.ForTask(task, now),
		})
	}
	return views, nil
}

// Get retrieves a single task with metrics. A task outside the actor's
// scope is reported as not found, keeping reads silent.
func (s *TaskService) Get(ctx context.Context, actor *domain.Actor, id uuid.UUID) (*TaskView, error) {
	if dec := s.policy.Permit(actor, authz.ActionRetrieve); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := s.policy.PermitObject(actor, authz.ActionRetrieve, task); !dec.Allowed {
		return nil, store.ErrTaskNotFound
	}

	return &TaskView{Task: task, Metrics: schedule.ForTask(task, s.clock.Now())}, nil
}

// Create creates a task assigned by the acting manager. AssignedBy is
// forced from the actor; employees are denied at the coarse check.
func (s *TaskService) Create(
	ctx context.Context,
	actor *domain.Actor,
	input CreateTaskInput,
) (*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if dec := s.policy.Permit(actor, authz.ActionCreate); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	task, err := domain.NewTask(input.ProjectID, input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.Status != "" {
		task.Status = input.Status
	}
	task.AssignedTo = input.AssignedTo
	task.AssignedBy = &actor.ID
	task.ModifiedBy = &actor.ID
	task.ETA = input.ETA

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("assigned_by", actor.ID.String()))
	return &TaskView{Task: task, Metrics: schedule.ForTask(task, s.clock.Now())}, nil
}

// Update applies a partial update to a task within the actor's scope.
// Unspecified fields are unchanged. The object-level check re-verifies
// assignment before the mutation goes through.
func (s *TaskService) Update(
	ctx context.Context,
	actor *domain.Actor,
	id uuid.UUID,
	input UpdateTaskInput,
) (*TaskView, error) {
	if dec := s.policy.Permit(actor, authz.ActionUpdate); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := s.policy.PermitObject(actor, authz.ActionUpdate, task); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	s.merge(task, input)
	task.ModifiedBy = &actor.ID
	task.ModifiedAt = s.clock.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &TaskView{Task: task, Metrics: schedule.ForTask(task, s.clock.Now())}, nil
}

// Delete soft-deletes a task. Only the manager who originally assigned it
// may delete it; the denial carries an explicit message.
func (s *TaskService) Delete(ctx context.Context, actor *domain.Actor, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if dec := s.policy.Permit(actor, authz.ActionDelete); !dec.Allowed {
		return forbidden(dec.Reason)
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dec := s.policy.PermitObject(actor, authz.ActionDelete, task); !dec.Allowed {
		return forbidden(dec.Reason)
	}

	if err := s.tasks.SoftDelete(ctx, id, actor.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	log.Info("task deleted",
		slog.String("task_id", id.String()),
		slog.String("actor_id", actor.ID.String()))
	return nil
}

// Request creates a task on behalf of an employee. Status, assignee and
// assigner are forced regardless of what the caller supplied: the task
// starts at pending, assigned to the requester, assigned by the project's
// owner. Managers use Create instead.
func (s *TaskService) Request(
	ctx context.Context,
	actor *domain.Actor,
	input RequestTaskInput,
) (*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsEmployee() {
		return nil, forbidden(authz.ReasonEmployeeOnlyRequest)
	}

	project, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(project.ID, input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	task.ETA = input.ETA

	// Forced fields: caller-supplied values never survive.
	task.Status = domain.TaskStatusPending
	task.AssignedTo = &actor.ID
	task.AssignedBy = &project.OwnerID

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create requested task: %w", err)
	}

	log.Info("task requested",
		slog.String("task_id", task.ID.String()),
		slog.String("requested_by", actor.ID.String()),
		slog.String("project_id", project.ID.String()))
	return &TaskView{Task: task, Metrics: schedule.ForTask(task, s.clock.Now())}, nil
}

// Approve moves a requested task to todo. The approving manager becomes the
// assigner and modifier; other supplied fields merge as a partial update.
// The prior status is not checked, matching the generic-update freedom
// managers already have.
func (s *TaskService) Approve(
	ctx context.Context,
	actor *domain.Actor,
	id uuid.UUID,
	input UpdateTaskInput,
) (*TaskView, error) {
	return s.resolve(ctx, actor, id, input, domain.TaskStatusTodo, true)
}

// Reject moves a requested task to rejected. The rejecting manager is
// stamped as modifier; the original assigner is kept.
func (s *TaskService) Reject(
	ctx context.Context,
	actor *domain.Actor,
	id uuid.UUID,
	input UpdateTaskInput,
) (*TaskView, error) {
	return s.resolve(ctx, actor, id, input, domain.TaskStatusRejected, false)
}

// resolve implements the shared approve/reject path.
func (s *TaskService) resolve(
	ctx context.Context,
	actor *domain.Actor,
	id uuid.UUID,
	input UpdateTaskInput,
	status domain.TaskStatus,
	takeOwnership bool,
) (*TaskView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !actor.IsManager() {
		return nil, forbidden(authz.ReasonManagerOnlyResolve)
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.merge(task, input)

	// Forced fields override whatever the merge brought in.
	task.Status = status
	if takeOwnership {
		task.AssignedBy = &actor.ID
	}
	task.ModifiedBy = &actor.ID
	task.ModifiedAt = s.clock.Now()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to resolve task: %w", err)
	}

	log.Info("task resolved",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(status)),
		slog.String("actor_id", actor.ID.String()))
	return &TaskView{Task: task, Metrics: schedule.ForTask(task, s.clock.Now())}, nil
}

// merge applies the non-nil fields of a partial update onto the task.
func (s *TaskService) merge(task *domain.Task, input UpdateTaskInput) {
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.AssignedTo != nil {
		task.AssignedTo = input.AssignedTo
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.ETA != nil {
		task.ETA = input.ETA
	}
}
