package workflow

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workdeck/workdeck-api/internal/domain"
	"github.com/workdeck/workdeck-api/internal/domain/authz"
	"github.com/workdeck/workdeck-api/internal/mocks"
	"github.com/workdeck/workdeck-api/internal/store"
)

type projectFixture struct {
	svc      *ProjectService
	projects *mocks.MemoryProjectStore
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	projects := mocks.NewMemoryProjectStore()
	return &projectFixture{
		svc:      NewProjectService(projects, slog.Default()),
		projects: projects,
	}
}

func TestProjectService_Create_ForcesOwner(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	manager := newTestManager(t)
	memberID := uuid.New()

	project, err := f.svc.Create(context.Background(), manager, CreateProjectInput{
		Name:        "Apollo",
		Description: "launch prep",
		MemberIDs:   []uuid.UUID{memberID},
	})
	require.NoError(t, err)

	assert.Equal(t, manager.ID, project.OwnerID)
	assert.Equal(t, []uuid.UUID{memberID}, project.MemberIDs)
	require.NotNil(t, project.ModifiedBy)
	assert.Equal(t, manager.ID, *project.ModifiedBy)
}

func TestProjectService_Create_EmployeeDenied(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	employee := newTestEmployee(t)

	_, err := f.svc.Create(context.Background(), employee, CreateProjectInput{Name: "nope"})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, authz.ReasonEmployeeReadOnly, DenialReason(err))
}

func TestProjectService_List_ScopedByRole(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	owner := newTestManager(t)
	employee := newTestEmployee(t)

	mine, err := f.svc.Create(context.Background(), owner, CreateProjectInput{
		Name:      "Apollo",
		MemberIDs: []uuid.UUID{employee.ID},
	})
	require.NoError(t, err)

	other, err := domain.NewActor("rival", "rival@example.com", "password1234567", domain.RoleManager)
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), other, CreateProjectInput{Name: "Gemini"})
	require.NoError(t, err)

	owned, err := f.svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)

	member, err := f.svc.List(context.Background(), employee)
	require.NoError(t, err)
	require.Len(t, member, 1)
	assert.Equal(t, mine.ID, member[0].ID)
}

func TestProjectService_Get_ForeignProjectReportsNotFound(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	owner := newTestManager(t)
	project, err := f.svc.Create(context.Background(), owner, CreateProjectInput{Name: "Apollo"})
	require.NoError(t, err)

	outsider := newTestEmployee(t)
	_, err = f.svc.Get(context.Background(), outsider, project.ID)
	require.ErrorIs(t, err, store.ErrProjectNotFound)

	// Owner is not an implicit member: a foreign manager gets not-found too.
	other, err := domain.NewActor("rival", "rival@example.com", "password1234567", domain.RoleManager)
	require.NoError(t, err)
	_, err = f.svc.Get(context.Background(), other, project.ID)
	require.ErrorIs(t, err, store.ErrProjectNotFound)
}

func TestProjectService_Get_MemberCanRead(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	owner := newTestManager(t)
	employee := newTestEmployee(t)
	project, err := f.svc.Create(context.Background(), owner, CreateProjectInput{
		Name:      "Apollo",
		MemberIDs: []uuid.UUID{employee.ID},
	})
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), employee, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)
}

func TestProjectService_Update_OwnerOnly(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	owner := newTestManager(t)
	project, err := f.svc.Create(context.Background(), owner, CreateProjectInput{Name: "Apollo"})
	require.NoError(t, err)

	name := "Apollo 11"
	updated, err := f.svc.Update(context.Background(), owner, project.ID, UpdateProjectInput{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, project.Description, updated.Description)

	other, err := domain.NewActor("rival", "rival@example.com", "password1234567", domain.RoleManager)
	require.NoError(t, err)
	_, err = f.svc.Update(context.Background(), other, project.ID, UpdateProjectInput{Name: &name})
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, authz.ReasonNotProjectOwner, DenialReason(err))
}

func TestProjectService_Delete(t *testing.T) {
	t.Parallel()

	f := newProjectFixture(t)
	owner := newTestManager(t)
	employee := newTestEmployee(t)
	project, err := f.svc.Create(context.Background(), owner, CreateProjectInput{
		Name:      "Apollo",
		MemberIDs: []uuid.UUID{employee.ID},
	})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), employee, project.ID)
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, authz.ReasonEmployeeReadOnly, DenialReason(err))

	require.NoError(t, f.svc.Delete(context.Background(), owner, project.ID))
	_, err = f.svc.Get(context.Background(), owner, project.ID)
	require.ErrorIs(t, err, store.ErrProjectNotFound)
}
