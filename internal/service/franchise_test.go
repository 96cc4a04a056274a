package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/franchise-api/internal/domain"
	"github.com/vietanh2810/franchise-api/internal/permission"
	"github.com/vietanh2810/franchise-api/internal/repository"
)

func TestFranchiseService_List(t *testing.T) {
	ctx := context.Background()
	all := []domain.Franchise{{ID: "F1"}, {ID: "F2"}}

	t.Run("admin sees every franchise", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("FindAll", ctx).Return(all, nil)

		got, err := NewFranchiseService(repo).List(ctx, adminClaims())
		require.NoError(t, err)
		assert.Equal(t, all, got)
	})

	t.Run("tenant sees its own franchise only", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("FindByID", ctx, "F2").Return(all[1], nil)

		got, err := NewFranchiseService(repo).List(ctx, tenantClaims("F2"))
		require.NoError(t, err)
		assert.Equal(t, []domain.Franchise{all[1]}, got)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("tenant without franchise is refused", func(t *testing.T) {
		repo := new(MockFranchiseRepository)

		_, err := NewFranchiseService(repo).List(ctx, tenantClaims(""))
		assert.ErrorIs(t, err, permission.ErrForbiddenFranchise)
	})
}

func TestFranchiseService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("other franchise is forbidden", func(t *testing.T) {
		repo := new(MockFranchiseRepository)

		_, err := NewFranchiseService(repo).Get(ctx, tenantClaims("F2"), "F9")
		assert.ErrorIs(t, err, permission.ErrForbiddenFranchise)
		repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing franchise", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("FindByID", ctx, "F1").Return(domain.Franchise{}, repository.ErrNotFound)

		_, err := NewFranchiseService(repo).Get(ctx, adminClaims(), "F1")
		assert.ErrorIs(t, err, ErrFranchiseNotFound)
	})
}

func TestFranchiseService_Create(t *testing.T) {
	ctx := context.Background()
	franchise := domain.Franchise{Name: "Paris 11", Email: "p11@example.com"}

	t.Run("admin only", func(t *testing.T) {
		_, err := NewFranchiseService(new(MockFranchiseRepository)).Create(ctx, tenantClaims("F2"), franchise)
		assert.ErrorIs(t, err, permission.ErrAdminOnly)
	})

	t.Run("name taken", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("FindByName", mock.Anything, "Paris 11").Return(domain.Franchise{ID: "F1"}, nil)
		repo.On("FindByEmail", mock.Anything, "p11@example.com").Return(domain.Franchise{}, repository.ErrNotFound)

		_, err := NewFranchiseService(repo).Create(ctx, adminClaims(), franchise)
		assert.ErrorIs(t, err, ErrFranchiseNameExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("race on unique index maps to conflict", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("FindByName", mock.Anything, "Paris 11").Return(domain.Franchise{}, repository.ErrNotFound)
		repo.On("FindByEmail", mock.Anything, "p11@example.com").Return(domain.Franchise{}, repository.ErrNotFound)
		repo.On("Create", ctx, franchise).Return(domain.Franchise{}, repository.ErrFranchiseEmailExists)

		_, err := NewFranchiseService(repo).Create(ctx, adminClaims(), franchise)
		assert.ErrorIs(t, err, ErrFranchiseEmailExists)
	})

	t.Run("created", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("FindByName", mock.Anything, "Paris 11").Return(domain.Franchise{}, repository.ErrNotFound)
		repo.On("FindByEmail", mock.Anything, "p11@example.com").Return(domain.Franchise{}, repository.ErrNotFound)
		want := franchise
		want.ID = "F1"
		repo.On("Create", ctx, franchise).Return(want, nil)

		got, err := NewFranchiseService(repo).Create(ctx, adminClaims(), franchise)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestFranchiseService_Update(t *testing.T) {
	ctx := context.Background()
	current := domain.Franchise{ID: "F2", Name: "Lyon", City: "Lyon"}
	name := "Lyon Centre"

	repo := new(MockFranchiseRepository)
	repo.On("FindByID", ctx, "F2").Return(current, nil)
	// the record itself does not count as a duplicate
	repo.On("FindByName", mock.Anything, name).Return(domain.Franchise{ID: "F2"}, nil)
	updated := current
	updated.Name = name
	repo.On("Update", ctx, updated).Return(updated, nil)

	got, err := NewFranchiseService(repo).Update(ctx, tenantClaims("F2"), "F2", domain.FranchiseUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, got.Name)
	assert.Equal(t, "Lyon", got.City)
}

func TestFranchiseService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("tenant refused", func(t *testing.T) {
		err := NewFranchiseService(new(MockFranchiseRepository)).Delete(ctx, tenantClaims("F2"), "F2")
		assert.ErrorIs(t, err, permission.ErrAdminOnly)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockFranchiseRepository)
		repo.On("Delete", ctx, "F1").Return(repository.ErrNotFound)

		err := NewFranchiseService(repo).Delete(ctx, adminClaims(), "F1")
		assert.ErrorIs(t, err, ErrFranchiseNotFound)
	})
}
