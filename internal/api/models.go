package api

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/service/workflow"
)

// etaLayout is the wire format for task due dates. Due dates are calendar
// days, not instants.
const etaLayout = "2006-01-02"

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
	Role     string `json:"role"     validate:"omitempty,oneof=manager employee"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	ActorID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization.
	AccessToken string `json:"token"`

	// RefreshToken is the JWT token used to obtain new access tokens.
	RefreshToken string `json:"refresh_token,omitempty"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires.
	ExpiresAt string `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token
// refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// ActorResponse is the identity projection returned by /users/me.
type ActorResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role,omitempty"`
}

// UpdateActorRequest defines the payload for the manager-gated user update.
type UpdateActorRequest struct {
	Role *string `json:"role" validate:"omitempty,oneof=manager employee"`
}

// CreateProjectRequest defines the payload for creating a project.
type CreateProjectRequest struct {
	Name        string      `json:"name"        validate:"required,max=100"`
	Description string      `json:"description"`
	Members     []uuid.UUID `json:"members"`
}

// UpdateProjectRequest defines the payload for a partial project update.
type UpdateProjectRequest struct {
	Name        *string      `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string      `json:"description"`
	Members     *[]uuid.UUID `json:"members"`
}

// ProjectResponse is the wire representation of a project.
type ProjectResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Owner       uuid.UUID   `json:"owner"`
	Members     []uuid.UUID `json:"members"`
	CreatedAt   time.Time   `json:"created_at"`
	ModifiedAt  time.Time   `json:"modified_at"`
}

func newProjectResponse(p *domain.Project) ProjectResponse {
	members := p.MemberIDs
	if members == nil {
		members = []uuid.UUID{}
	}
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Owner:       p.OwnerID,
		Members:     members,
		CreatedAt:   p.CreatedAt,
		ModifiedAt:  p.ModifiedAt,
	}
}

// CreateTaskRequest defines the payload for the manager task creation
// endpoint. ETA is a calendar date in 2006-01-02 form.
type CreateTaskRequest struct {
	ProjectID   uuid.UUID  `json:"project_id"  validate:"required"`
	Name        string     `json:"name"        validate:"required,max=100"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      string     `json:"status"      validate:"omitempty,oneof=todo doing completed pending rejected"`
	ETA         *string    `json:"eta"`
}

// RequestTaskRequest defines the payload for the employee task request
// endpoint. Status and assignment fields are absent on purpose: the
// workflow forces them.
type RequestTaskRequest struct {
	ProjectID   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name"       validate:"required,max=100"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"   validate:"omitempty,oneof=low medium high"`
	ETA         *string   `json:"eta"`
}

// UpdateTaskRequest defines the payload for partial task updates, and for
// the extra fields riding along on approve and reject.
type UpdateTaskRequest struct {
	Name        *string    `json:"name"        validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=todo doing completed pending rejected"`
	ETA         *string    `json:"eta"`
}

// TaskResponse is the wire representation of a task plus its derived
// scheduling metrics. Metrics are computed at read time, never stored.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AssignedBy  *uuid.UUID `json:"assigned_by"`
	AssignedTo  *uuid.UUID `json:"assigned_to"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ETA         *string    `json:"eta"`
	DelayStatus bool       `json:"delay_status"`
	TaskAge     int        `json:"task_age"`
	DaysLeft    *int       `json:"days_left"`
	DelayedDays int        `json:"delayed_days"`
	CreatedAt   time.Time  `json:"created_at"`
	ModifiedAt  time.Time  `json:"modified_at"`
}

func newTaskResponse(view workflow.TaskView) TaskResponse {
	t := view.Task
	var eta *string
	if t.ETA != nil {
		s := t.ETA.Format(etaLayout)
		eta = &s
	}
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Description: t.Description,
		AssignedBy:  t.AssignedBy,
		AssignedTo:  t.AssignedTo,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		ETA:         eta,
		DelayStatus: view.Metrics.DelayStatus,
		TaskAge:     view.Metrics.TaskAge,
		DaysLeft:    view.Metrics.DaysLeft,
		DelayedDays: view.Metrics.DelayedDays,
		CreatedAt:   t.CreatedAt,
		ModifiedAt:  t.ModifiedAt,
	}
}

func newTaskResponses(views []workflow.TaskView) []TaskResponse {
	out := make([]TaskResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newTaskResponse(v))
	}
	return out
}

// parseETA parses an optional wire-format due date.
func parseETA(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(etaLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("eta must be a date in %s form: %w", etaLayout, domain.ErrValidation)
	}
	t = t.UTC()
	return &t, nil
}
