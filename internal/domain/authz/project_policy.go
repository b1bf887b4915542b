package authz

import (
	"github.com/workdeck/workdeck-api/internal/domain"
)

// ProjectPolicy decides what an actor may do with projects.
//
// Managers get full access, but only to projects they own. Employees get
// read access, and only to projects that list them as a member.
type ProjectPolicy struct{}

// NewProjectPolicy returns the project authorization policy.
func NewProjectPolicy() ProjectPolicy {
	return ProjectPolicy{}
}

// Permit is the coarse role-level check, applied before any resource is
// resolved. Object ownership is re-verified by PermitObject.
func (ProjectPolicy) Permit(actor *domain.Actor, action Action) Decision {
	switch actor.Role {
	case domain.RoleManager:
		return Allow()

	case domain.RoleEmployee:
		if action.IsRead() {
			return Allow()
		}
		return Deny(ReasonEmployeeReadOnly)

	default:
		return Deny(ReasonUnknownRole)
	}
}

// PermitObject is the fine object-level check against a resolved project.
func (ProjectPolicy) PermitObject(actor *domain.Actor, action Action, project *domain.Project) Decision {
	switch actor.Role {
	case domain.RoleManager:
		if project.OwnerID == actor.ID {
			return Allow()
		}
		return Deny(ReasonNotProjectOwner)

	case domain.RoleEmployee:
		if !action.IsRead() {
			return Deny(ReasonEmployeeReadOnly)
		}
		if project.HasMember(actor.ID) {
			return Allow()
		}
		return Deny(ReasonNotProjectMember)

	default:
		return Deny(ReasonUnknownRole)
	}
}
