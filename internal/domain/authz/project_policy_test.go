package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/workdeck/workdeck-api/internal/domain"
)

func projectOf(owner uuid.UUID, members ...uuid.UUID) *domain.Project {
	return &domain.Project{
		ID:        uuid.New(),
		Name:      "x",
		OwnerID:   owner,
		MemberIDs: members,
	}
}

func TestProjectPolicyManagerOwnsScope(t *testing.T) {
	t.Parallel()

	policy := NewProjectPolicy()
	mgr := manager()
	other := uuid.New()

	for _, action := range []Action{ActionList, ActionRetrieve, ActionCreate, ActionUpdate, ActionDelete} {
		assert.True(t, policy.Permit(mgr, action).Allowed)
	}

	owned := projectOf(mgr.ID)
	assert.True(t, policy.PermitObject(mgr, ActionUpdate, owned).Allowed)
	assert.True(t, policy.PermitObject(mgr, ActionDelete, owned).Allowed)

	foreign := projectOf(other)
	dec := policy.PermitObject(mgr, ActionUpdate, foreign)
	assert.False(t, dec.Allowed)
	assert.Equal(t, ReasonNotProjectOwner, dec.Reason)
}

func TestProjectPolicyEmployeeReadOnlyMemberScope(t *testing.T) {
	t.Parallel()

	policy := NewProjectPolicy()
	emp := employee()

	assert.True(t, policy.Permit(emp, ActionList).Allowed)
	assert.True(t, policy.Permit(emp, ActionRetrieve).Allowed)

	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		dec := policy.Permit(emp, action)
		assert.False(t, dec.Allowed)
		assert.Equal(t, ReasonEmployeeReadOnly, dec.Reason)
	}

	memberOf := projectOf(uuid.New(), emp.ID)
	assert.True(t, policy.PermitObject(emp, ActionRetrieve, memberOf).Allowed)

	// Membership grants reads only; mutation stays denied.
	assert.False(t, policy.PermitObject(emp, ActionUpdate, memberOf).Allowed)

	stranger := projectOf(uuid.New(), uuid.New())
	dec := policy.PermitObject(emp, ActionRetrieve, stranger)
	assert.False(t, dec.Allowed)
	assert.Equal(t, ReasonNotProjectMember, dec.Reason)
}

func TestProjectPolicyUnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	policy := NewProjectPolicy()
	stranger := &domain.Actor{ID: uuid.New(), Username: "s", Role: domain.Role("root")}

	assert.False(t, policy.Permit(stranger, ActionList).Allowed)
	assert.False(t, policy.PermitObject(stranger, ActionRetrieve, projectOf(stranger.ID)).Allowed)
}

func TestReadOnlyPolicy(t *testing.T) {
	t.Parallel()

	policy := NewReadOnlyPolicy()
	emp := employee()

	assert.True(t, policy.Permit(emp, ActionList).Allowed)
	assert.True(t, policy.Permit(emp, ActionRetrieve).Allowed)

	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		dec := policy.Permit(emp, action)
		assert.False(t, dec.Allowed)
		assert.Equal(t, ReasonReadOnlyEndpoint, dec.Reason)
	}
}
