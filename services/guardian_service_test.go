package services

import (
	"Henteklar/models"
	"Henteklar/repositories"
	"Henteklar/repositories/mocks"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newGuardianService() (*GuardianService, *mocks.AccountRepository, *mocks.ChildRepository) {
	accountRepo := new(mocks.AccountRepository)
	childRepo := new(mocks.ChildRepository)
	return NewGuardianService(accountRepo, childRepo, zap.NewNop()), accountRepo, childRepo
}

func TestResolveChildDropsOrphanedParentIDs(t *testing.T) {
	svc, accountRepo, childRepo := newGuardianService()

	child := models.Child{ID: "c1", ParentIDs: []string{"p1", "gone"}, PrimaryParentID: models.StringPtr("p1")}
	childRepo.On("FindByID", mock.Anything, "c1").Return(child, nil)
	accountRepo.On("FindByID", mock.Anything, "p1").Return(models.Account{Name: "Anne Hansen", Role: models.RoleParent}, nil)
	accountRepo.On("FindByID", mock.Anything, "gone").Return(models.Account{}, repositories.ErrNotFound)

	resolved, err := svc.ResolveChildWithGuardians(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, resolved.Parents, 1)
	assert.Equal(t, "p1", resolved.Parents[0].ID)
	assert.Equal(t, "p1", resolved.Parents[0].UserID)
	assert.True(t, resolved.Parents[0].IsPrimary)
}

func TestResolveChildHasAtMostOnePrimary(t *testing.T) {
	svc, accountRepo, childRepo := newGuardianService()

	child := models.Child{ID: "c1", ParentIDs: []string{"p1", "p2", "p2", "p3"}, PrimaryParentID: models.StringPtr("p2")}
	childRepo.On("FindByID", mock.Anything, "c1").Return(child, nil)
	accountRepo.On("FindByID", mock.Anything, mock.Anything).Return(models.Account{Role: models.RoleParent}, nil)

	resolved, err := svc.ResolveChildWithGuardians(context.Background(), "c1")
	require.NoError(t, err)

	primaries := 0
	for _, g := range resolved.Parents {
		if g.IsPrimary {
			primaries++
			assert.Equal(t, "p2", g.UserID)
		}
	}
	assert.Equal(t, 1, primaries)
	assert.Len(t, resolved.Parents, 3)
}

func TestResolveChildWithoutParents(t *testing.T) {
	svc, _, childRepo := newGuardianService()
	childRepo.On("FindByID", mock.Anything, "c1").Return(models.Child{ID: "c1"}, nil)

	resolved, err := svc.ResolveChildWithGuardians(context.Background(), "c1")

	require.NoError(t, err)
	assert.NotNil(t, resolved.Parents)
	assert.Empty(t, resolved.Parents)
}

func TestResolveMissingChildReturnsNil(t *testing.T) {
	svc, _, childRepo := newGuardianService()
	childRepo.On("FindByID", mock.Anything, "c9").Return(models.Child{}, repositories.ErrNotFound)

	resolved, err := svc.ResolveChildWithGuardians(context.Background(), "c9")

	assert.NoError(t, err)
	assert.Nil(t, resolved)
}

func TestFindOrCreateGuardianReturnsExistingUnchanged(t *testing.T) {
	svc, accountRepo, _ := newGuardianService()

	existing := models.Account{ID: "p1", Email: "a@example.com", Phone: "11111111"}
	accountRepo.On("FindByEmail", mock.Anything, "a@example.com").Return([]models.Account{existing}, nil)

	id, err := svc.FindOrCreateGuardian(context.Background(), models.GuardianInput{
		Name:  "Anne",
		Email: "a@example.com",
		Phone: "99999999",
	})

	require.NoError(t, err)
	assert.Equal(t, "p1", id)
	accountRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	accountRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFindOrCreateGuardianCreatesParent(t *testing.T) {
	svc, accountRepo, _ := newGuardianService()

	accountRepo.On("FindByEmail", mock.Anything, "ny@example.com").Return([]models.Account{}, nil)
	accountRepo.On("Create", mock.Anything, mock.MatchedBy(func(a models.Account) bool {
		return a.Role == models.RoleParent && a.Avatar == "PN" && a.Phone == "" && a.Relation == "Far"
	})).Return("p7", nil)

	id, err := svc.FindOrCreateGuardian(context.Background(), models.GuardianInput{
		Name:     "Per Nilsen",
		Email:    " ny@example.com ",
		Relation: "Far",
	})

	require.NoError(t, err)
	assert.Equal(t, "p7", id)
	accountRepo.AssertExpectations(t)
}

func TestFindOrCreateGuardianNeedsEmail(t *testing.T) {
	svc, _, _ := newGuardianService()

	_, err := svc.FindOrCreateGuardian(context.Background(), models.GuardianInput{Name: "Per"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "guardian_email_required", verr.Code)
}

func TestResolveChildrenForGuardianScopesToOwnChildren(t *testing.T) {
	svc, accountRepo, childRepo := newGuardianService()

	accountRepo.On("FindByEmail", mock.Anything, "g@example.com").Return([]models.Account{{ID: "g"}}, nil)
	accountRepo.On("FindByID", mock.Anything, "g").Return(models.Account{Email: "g@example.com"}, nil)
	c1 := models.Child{ID: "c1", ParentIDs: []string{"g"}}
	childRepo.On("FindByParentID", mock.Anything, "g").Return([]models.Child{c1}, nil)
	childRepo.On("FindByID", mock.Anything, "c1").Return(c1, nil)

	children, err := svc.ResolveChildrenForGuardian(context.Background(), "g@example.com")

	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "c1", children[0].ID)
	childRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestResolveChildrenForGuardianSkipsFailingChild(t *testing.T) {
	svc, accountRepo, childRepo := newGuardianService()

	accountRepo.On("FindByEmail", mock.Anything, "g@example.com").Return([]models.Account{{ID: "g"}}, nil)
	accountRepo.On("FindByID", mock.Anything, "g").Return(models.Account{}, nil)
	childRepo.On("FindByParentID", mock.Anything, "g").Return([]models.Child{{ID: "c1"}, {ID: "c2"}}, nil)
	childRepo.On("FindByID", mock.Anything, "c1").Return(models.Child{}, errors.New("timeout"))
	childRepo.On("FindByID", mock.Anything, "c2").Return(models.Child{ID: "c2", ParentIDs: []string{"g"}}, nil)

	children, err := svc.ResolveChildrenForGuardian(context.Background(), "g@example.com")

	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, "c2", children[0].ID)
}

func TestResolveChildrenForUnknownEmail(t *testing.T) {
	svc, accountRepo, _ := newGuardianService()
	accountRepo.On("FindByEmail", mock.Anything, "x@example.com").Return([]models.Account{}, nil)

	children, err := svc.ResolveChildrenForGuardian(context.Background(), "x@example.com")

	require.NoError(t, err)
	assert.Empty(t, children)
}
