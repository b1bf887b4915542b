package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/domain/authz"
	"github.com/workdeck/workdeck-api/internal/platform/logger"
	"github.com/workdeck/workdeck-api/internal/store"
)

// CreateProjectInput carries the caller-supplied fields for a new project.
type CreateProjectInput struct {
	Name        string
	Description string
	MemberIDs   []uuid.UUID
}

// UpdateProjectInput carries a partial project update. Nil fields are left
// unchanged on the stored entity.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	MemberIDs   *[]uuid.UUID
}

// ProjectService orchestrates project operations: role-scoped reads and
// owner-gated mutations.
type ProjectService struct {
	projects store.ProjectStore
	policy   authz.ProjectPolicy
	logger   *slog.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects store.ProjectStore, logger *slog.Logger) *ProjectService {
	if projects == nil {
		panic("projects cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProjectService{
		projects: projects,
		policy:   authz.NewProjectPolicy(),
		logger:   logger.With(slog.String("component", "project_service")),
	}
}

// List returns the projects visible to the actor: owned projects for a
// manager, member projects for an employee. The scoping happens in the
// query itself, before any per-object check.
func (s *ProjectService) List(ctx context.Context, actor *domain.Actor) ([]*domain.Project, error) {
	if dec := s.policy.Permit(actor, authz.ActionList); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	switch actor.Role {
	case domain.RoleManager:
		return s.projects.ListOwnedBy(ctx, actor.ID)
	case domain.RoleEmployee:
		return s.projects.ListMemberOf(ctx, actor.ID)
	default:
		return nil, forbidden(authz.ReasonUnknownRole)
	}
}

// Get retrieves a single project. A project outside the actor's scope is
// reported as not found, not as forbidden, so reads stay silent.
func (s *ProjectService) Get(ctx context.Context, actor *domain.Actor, id uuid.UUID) (*domain.Project, error) {
	if dec := s.policy.Permit(actor, authz.ActionRetrieve); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := s.policy.PermitObject(actor, authz.ActionRetrieve, project); !dec.Allowed {
		return nil, store.ErrProjectNotFound
	}

	return project, nil
}

// Create creates a project owned by the acting manager. The ownership is
// forced from the actor, never taken from the payload.
func (s *ProjectService) Create(
	ctx context.Context,
	actor *domain.Actor,
	input CreateProjectInput,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if dec := s.policy.Permit(actor, authz.ActionCreate); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	project, err := domain.NewProject(actor.ID, input.Name, input.Description)
	if err != nil {
		return nil, err
	}
	project.MemberIDs = input.MemberIDs
	project.ModifiedBy = &actor.ID

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner_id", actor.ID.String()))
	return project, nil
}

// Update applies a partial update to a project the actor owns.
// Unspecified fields are unchanged.
func (s *ProjectService) Update(
	ctx context.Context,
	actor *domain.Actor,
	id uuid.UUID,
	input UpdateProjectInput,
) (*domain.Project, error) {
	if dec := s.policy.Permit(actor, authz.ActionUpdate); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if dec := s.policy.PermitObject(actor, authz.ActionUpdate, project); !dec.Allowed {
		return nil, forbidden(dec.Reason)
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.MemberIDs != nil {
		project.MemberIDs = *input.MemberIDs
	}
	project.ModifiedBy = &actor.ID

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete soft-deletes a project the actor owns.
func (s *ProjectService) Delete(ctx context.Context, actor *domain.Actor, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if dec := s.policy.Permit(actor, authz.ActionDelete); !dec.Allowed {
		return forbidden(dec.Reason)
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if dec := s.policy.PermitObject(actor, authz.ActionDelete, project); !dec.Allowed {
		return forbidden(dec.Reason)
	}

	if err := s.projects.SoftDelete(ctx, id, actor.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	log.Info("project deleted",
		slog.String("project_id", id.String()),
		slog.String("actor_id", actor.ID.String()))
	return nil
}
