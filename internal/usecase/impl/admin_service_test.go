package impl

import (
	"context"
	"testing"

	"roost/internal/domain/entity"
	"roost/internal/domain/repository"
	mockRepo "roost/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminMocks struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	connRepo  *mockRepo.MockConnectionRepository
}

func newAdminMocks(t *testing.T) *adminMocks {
	t.Helper()

	am := &adminMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		connRepo:  mockRepo.NewMockConnectionRepository(t),
	}

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().NewUserRepository().Return(am.userRepo).Maybe()
	mockFactory.EXPECT().NewConnectionRepository().Return(am.connRepo).Maybe()

	am.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	return am
}

func TestAdminService_Overview(t *testing.T) {
	ctx := context.Background()
	am := newAdminMocks(t)

	am.userRepo.EXPECT().Count(mock.Anything).Return(int64(12), nil)
	am.connRepo.EXPECT().Count(mock.Anything).Return(int64(7), nil)

	srv := NewAdminService(am.txManager, testLogger())

	overview, err := srv.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), overview.TotalUsers)
	assert.Equal(t, int64(7), overview.TotalConnections)
}

func TestAdminService_OverviewDatabaseFailure(t *testing.T) {
	ctx := context.Background()
	am := newAdminMocks(t)

	am.userRepo.EXPECT().Count(mock.Anything).Return(int64(0), assert.AnError)

	srv := NewAdminService(am.txManager, testLogger())

	overview, err := srv.Overview(ctx)
	require.Error(t, err)
	assert.Nil(t, overview)
}

func TestAdminService_ListUsersClampsPaging(t *testing.T) {
	ctx := context.Background()
	am := newAdminMocks(t)

	users := []*entity.User{{ID: uuid.New(), Email: "a@example.com", Role: entity.RoleCustomer}}

	// Zero limit falls back to the default page size, oversized limits
	// clamp to the maximum and negative offsets reset to zero.
	am.userRepo.EXPECT().List(mock.Anything, 50, 0).Return(users, nil).Once()
	am.userRepo.EXPECT().List(mock.Anything, 200, 10).Return(users, nil).Once()
	am.userRepo.EXPECT().List(mock.Anything, 25, 0).Return(users, nil).Once()

	srv := NewAdminService(am.txManager, testLogger())

	got, err := srv.ListUsers(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = srv.ListUsers(ctx, 1000, 10)
	require.NoError(t, err)

	_, err = srv.ListUsers(ctx, 25, -5)
	require.NoError(t, err)
}
