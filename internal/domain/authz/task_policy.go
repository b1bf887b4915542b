package authz

import (
	"github.com/workdeck/workdeck-api/internal/domain"
)

// TaskPolicy decides what an actor may do with tasks.
//
// Managers get full access, scoped to tasks they originally assigned; delete
// additionally re-checks that ownership. Employees may read and update tasks
// assigned to them, and may never create or delete a task directly, whatever
// the ownership configuration.
type TaskPolicy struct{}

// NewTaskPolicy returns the task authorization policy.
func NewTaskPolicy() TaskPolicy {
	return TaskPolicy{}
}

// Permit is the coarse role-level check. Note that it nominally allows
// employee updates; PermitObject must still re-verify assignment before any
// mutation goes through.
func (TaskPolicy) Permit(actor *domain.Actor, action Action) Decision {
	switch actor.Role {
	case domain.RoleManager:
		return Allow()

	case domain.RoleEmployee:
		switch action {
		case ActionCreate:
			return Deny(ReasonEmployeeNoCreate)
		case ActionDelete:
			return Deny(ReasonEmployeeNoDelete)
		default:
			return Allow()
		}

	default:
		return Deny(ReasonUnknownRole)
	}
}

// PermitObject is the fine object-level check against a resolved task.
func (TaskPolicy) PermitObject(actor *domain.Actor, action Action, task *domain.Task) Decision {
	switch actor.Role {
	case domain.RoleManager:
		if task.AssignedBy != nil && *task.AssignedBy == actor.ID {
			return Allow()
		}
		return Deny(ReasonNotAssigningOwner)

	case domain.RoleEmployee:
		switch action {
		case ActionCreate:
			return Deny(ReasonEmployeeNoCreate)
		case ActionDelete:
			return Deny(ReasonEmployeeNoDelete)
		default:
			if task.AssignedTo != nil && *task.AssignedTo == actor.ID {
				return Allow()
			}
			return Deny(ReasonNotAssignedToYou)
		}

	default:
		return Deny(ReasonUnknownRole)
	}
}

// ReadOnlyPolicy permits only read actions for any authenticated actor.
// Used for the bare user directory lookup.
type ReadOnlyPolicy struct{}

// NewReadOnlyPolicy returns the read-only policy.
func NewReadOnlyPolicy() ReadOnlyPolicy {
	return ReadOnlyPolicy{}
}

// Permit allows list and retrieve only.
func (ReadOnlyPolicy) Permit(_ *domain.Actor, action Action) Decision {
	if action.IsRead() {
		return Allow()
	}
	return Deny(ReasonReadOnlyEndpoint)
}
