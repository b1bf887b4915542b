package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Possible task status values.
//
// Manager-created tasks start at todo. Employee-requested tasks start at
// pending and leave it only through a manager approving (todo) or rejecting
// (rejected) the request.
const (
	TaskStatusTodo      TaskStatus = "todo"
	TaskStatusDoing     TaskStatus = "doing"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRejected  TaskStatus = "rejected"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Possible task priority values.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Common validation errors for Task
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrEmptyTaskProject = errors.New("task project ID cannot be empty")
	ErrTaskNameTooLong  = errors.New("task name must be at most 100 characters")
)

// ParseTaskStatus converts a status string to a TaskStatus.
// Returns ErrInvalidTaskStatus for anything outside the enum.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.Valid() {
		return "", ErrInvalidTaskStatus
	}
	return status, nil
}

// Valid reports whether the status is one of the recognized statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusDoing, TaskStatusCompleted,
		TaskStatusPending, TaskStatusRejected:
		return true
	default:
		return false
	}
}

// ParseTaskPriority converts a priority string to a TaskPriority.
// Returns ErrInvalidTaskPriority for anything outside the enum.
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !priority.Valid() {
		return "", ErrInvalidTaskPriority
	}
	return priority, nil
}

// Valid reports whether the priority is one of the recognized priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task is a unit of work inside a project. AssignedBy and AssignedTo may
// independently be unset (they are cleared when the referenced actor is
// removed) but the task itself persists; tasks are only ever soft-deleted.
type Task struct {
	ID          uuid.UUID    `json:"id"`
	ProjectID   uuid.UUID    `json:"project_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	AssignedBy  *uuid.UUID   `json:"assigned_by,omitempty"`
	AssignedTo  *uuid.UUID   `json:"assigned_to,omitempty"`
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	ETA         *time.Time   `json:"eta,omitempty"` // target completion date, date precision
	CreatedAt   time.Time    `json:"created_at"`
	ModifiedAt  time.Time    `json:"modified_at"`
	ModifiedBy  *uuid.UUID   `json:"modified_by,omitempty"`
	IsDeleted   bool         `json:"is_deleted"`
}

// NewTask creates a new Task in the given project with default status todo
// and priority medium. It generates a new UUID for the task ID and sets the
// timestamps. Returns an error if validation fails.
func NewTask(projectID uuid.UUID, name, description string) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Priority:    TaskPriorityMedium,
		Status:      TaskStatusTodo,
		CreatedAt:   time.Now().UTC(),
		ModifiedAt:  time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.ProjectID == uuid.Nil {
		return ErrEmptyTaskProject
	}

	if t.Name == "" {
		return ErrEmptyTaskName
	}

	if len(t.Name) > 100 {
		return ErrTaskNameTooLong
	}

	if !t.Status.Valid() {
		return ErrInvalidTaskStatus
	}

	if !t.Priority.Valid() {
		return ErrInvalidTaskPriority
	}

	return nil
}
