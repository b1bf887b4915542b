// Package authz implements the authorization engine.
//
// Every request is gated twice: a coarse role-level check (may this role
// attempt this action at all) and a fine object-level check (may this actor
// touch this particular resource). The object-level check re-verifies
// ownership or assignment even when the action type is generally permitted
// for the role, so one actor can never mutate another's resource.
//
// Dispatch is a closed switch over domain.Role. Every unmatched branch,
// including an unrecognized role, is an explicit Deny.
package authz

// Action classifies what a request wants to do with a resource.
type Action string

// Recognized actions.
const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
)

// IsRead reports whether the action only reads state.
func (a Action) IsRead() bool {
	return a == ActionList || a == ActionRetrieve
}

// Decision is the outcome of an authorization check. Reason is set on
// denials so mutation paths can surface an explicit message instead of
// silently filtering.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny returns a negative decision carrying the given reason.
func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Denial reasons shared across policies.
const (
	ReasonUnknownRole         = "role is not recognized"
	ReasonNotProjectOwner     = "only the owning manager may modify this project"
	ReasonNotProjectMember    = "employee is not a member of this project"
	ReasonEmployeeReadOnly    = "employees have read-only access to projects"
	ReasonEmployeeNoCreate    = "employee is not authorized to create tasks directly"
	ReasonEmployeeNoDelete    = "employee is not authorized to perform delete operation"
	ReasonNotAssignedToYou    = "task is not assigned to you"
	ReasonNotAssigningOwner   = "only owner of project is authorized to perform operation"
	ReasonReadOnlyEndpoint    = "endpoint is read-only"
	ReasonEmployeeOnlyRequest = "only employees may request tasks"
	ReasonManagerOnlyResolve  = "only managers may approve or reject tasks"
	ReasonManagerOnly         = "only managers may perform this operation"
)
