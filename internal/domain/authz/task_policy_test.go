package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/workdeck/workdeck-api/internal/domain"
)

func manager() *domain.Actor {
	return &domain.Actor{ID: uuid.New(), Username: "mona", Role: domain.RoleManager}
}

func employee() *domain.Actor {
	return &domain.Actor{ID: uuid.New(), Username: "eve", Role: domain.RoleEmployee}
}

func taskOf(assignedBy, assignedTo *uuid.UUID) *domain.Task {
	return &domain.Task{
		ID:         uuid.New(),
		ProjectID:  uuid.New(),
		Name:       "x",
		AssignedBy: assignedBy,
		AssignedTo: assignedTo,
		Status:     domain.TaskStatusTodo,
		Priority:   domain.TaskPriorityMedium,
	}
}

func TestTaskPolicyEmployeeNeverCreatesOrDeletes(t *testing.T) {
	t.Parallel()

	policy := NewTaskPolicy()
	emp := employee()

	// Every ownership configuration, including tasks assigned to the
	// employee themselves.
	configs := []*domain.Task{
		taskOf(nil, nil),
		taskOf(&emp.ID, &emp.ID),
		taskOf(nil, &emp.ID),
	}

	for _, action := range []Action{ActionCreate, ActionDelete} {
		assert.False(t, policy.Permit(emp, action).Allowed,
			"coarse check must deny employee %s", action)
		for _, task := range configs {
			assert.False(t, policy.PermitObject(emp, action, task).Allowed,
				"object check must deny employee %s", action)
		}
	}
}

func TestTaskPolicyEmployeeUpdateRequiresAssignment(t *testing.T) {
	t.Parallel()

	policy := NewTaskPolicy()
	emp := employee()
	other := uuid.New()

	// Coarse check nominally allows PUT/PATCH for employees...
	assert.True(t, policy.Permit(emp, ActionUpdate).Allowed)

	// ...but the object check re-verifies assignment before mutation.
	assigned := taskOf(nil, &emp.ID)
	assert.True(t, policy.PermitObject(emp, ActionUpdate, assigned).Allowed)

	foreign := taskOf(nil, &other)
	dec := policy.PermitObject(emp, ActionUpdate, foreign)
	assert.False(t, dec.Allowed)
	assert.Equal(t, ReasonNotAssignedToYou, dec.Reason)

	unassigned := taskOf(nil, nil)
	assert.False(t, policy.PermitObject(emp, ActionUpdate, unassigned).Allowed)

	// Reads follow the same assignment scoping.
	assert.True(t, policy.PermitObject(emp, ActionRetrieve, assigned).Allowed)
	assert.False(t, policy.PermitObject(emp, ActionRetrieve, foreign).Allowed)
}

func TestTaskPolicyManagerScopedToAssigner(t *testing.T) {
	t.Parallel()

	policy := NewTaskPolicy()
	mgr := manager()
	other := uuid.New()

	assert.True(t, policy.Permit(mgr, ActionDelete).Allowed)

	owned := taskOf(&mgr.ID, nil)
	assert.True(t, policy.PermitObject(mgr, ActionDelete, owned).Allowed)
	assert.True(t, policy.PermitObject(mgr, ActionUpdate, owned).Allowed)

	// A different manager's task: deny with the explicit owner message.
	foreign := taskOf(&other, nil)
	dec := policy.PermitObject(mgr, ActionDelete, foreign)
	assert.False(t, dec.Allowed)
	assert.Equal(t, ReasonNotAssigningOwner, dec.Reason)

	// A task with no assigner is nobody's to delete.
	unowned := taskOf(nil, nil)
	assert.False(t, policy.PermitObject(mgr, ActionDelete, unowned).Allowed)
}

func TestTaskPolicyUnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	policy := NewTaskPolicy()
	stranger := &domain.Actor{ID: uuid.New(), Username: "s", Role: domain.Role("auditor")}

	for _, action := range []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionDelete} {
		dec := policy.Permit(stranger, action)
		assert.False(t, dec.Allowed)
		assert.Equal(t, ReasonUnknownRole, dec.Reason)

		dec = policy.PermitObject(stranger, action, taskOf(&stranger.ID, &stranger.ID))
		assert.False(t, dec.Allowed, "unknown role must be denied even when IDs match")
	}
}
