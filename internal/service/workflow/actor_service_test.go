package workflow

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/domain/authz"
	"github.com/workdeck/workdeck-api/internal/mocks"
	"github.com/workdeck/workdeck-api/internal/store"
)

func newActorFixture(t *testing.T) (*ActorService, *mocks.MemoryActorStore) {
	t.Helper()
	actors := mocks.NewMemoryActorStore()
	return NewActorService(actors, mocks.PlainHasher{}, slog.Default()), actors
}

func TestActorService_Register(t *testing.T) {
	t.Parallel()

	svc, actors := newActorFixture(t)

	actor, err := svc.Register(context.Background(), "worker", "worker@example.com", "password1234567", "")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleEmployee, actor.Role, "role defaults to employee")
	assert.Empty(t, actor.Password, "plaintext must be cleared after hashing")
	assert.Equal(t, "hashed:password1234567", actor.HashedPassword)

	stored, err := actors.GetByUsername(context.Background(), "worker")
	require.NoError(t, err)
	assert.Equal(t, actor.ID, stored.ID)
}

func TestActorService_Register_DuplicateUsername(t *testing.T) {
	t.Parallel()

	svc, _ := newActorFixture(t)

	_, err := svc.Register(context.Background(), "worker", "a@example.com", "password1234567", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "worker", "b@example.com", "password1234567", domain.RoleEmployee)
	require.ErrorIs(t, err, store.ErrUsernameExists)
}

func TestActorService_Register_InvalidRole(t *testing.T) {
	t.Parallel()

	svc, _ := newActorFixture(t)

	_, err := svc.Register(context.Background(), "worker", "w@example.com", "password1234567", domain.Role("admin"))
	require.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestActorService_WhoAmI(t *testing.T) {
	t.Parallel()

	svc, _ := newActorFixture(t)
	manager := newTestManager(t)

	id := svc.WhoAmI(manager)
	assert.Equal(t, manager.ID, id.ID)
	assert.Equal(t, "boss", id.Username)
	assert.Equal(t, domain.RoleManager, id.Role)
}

func TestActorService_Directory(t *testing.T) {
	t.Parallel()

	svc, _ := newActorFixture(t)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password1234567", domain.RoleManager)
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "bob", "bob@example.com", "password1234567", domain.RoleEmployee)
	require.NoError(t, err)

	employee := newTestEmployee(t)
	refs, err := svc.Directory(context.Background(), employee)
	require.NoError(t, err)
	assert.Len(t, refs, 2, "directory is visible to any authenticated actor")
	for _, ref := range refs {
		assert.NotEqual(t, "", ref.Username)
	}
}

func TestActorService_Update_RoleChange(t *testing.T) {
	t.Parallel()

	svc, _ := newActorFixture(t)
	manager := newTestManager(t)

	target, err := svc.Register(context.Background(), "bob", "bob@example.com", "password1234567", domain.RoleEmployee)
	require.NoError(t, err)

	promoted := domain.RoleManager
	updated, err := svc.Update(context.Background(), manager, target.ID, UpdateActorInput{Role: &promoted})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, updated.Role)
	require.NotNil(t, updated.ModifiedBy)
	assert.Equal(t, manager.ID, *updated.ModifiedBy)
}

func TestActorService_Update_EmployeeDenied(t *testing.T) {
	t.Parallel()

	svc, _ := newActorFixture(t)
	employee := newTestEmployee(t)

	target, err := svc.Register(context.Background(), "bob", "bob@example.com", "password1234567", domain.RoleEmployee)
	require.NoError(t, err)

	promoted := domain.RoleManager
	_, err = svc.Update(context.Background(), employee, target.ID, UpdateActorInput{Role: &promoted})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, authz.ReasonManagerOnly, DenialReason(err))
}
