package mocks

import (
	"context"

	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a mock of store.UserStore interface for use with testify/mock
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

// Create is a mock implementation of store.UserStore.Create
func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Update is a mock implementation of store.UserStore.Update
func (m *TestifyMockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByID is a mock implementation of store.UserStore.GetByID
func (m *TestifyMockUserStore) GetByID(ctx context.Context, id string, includeDigest bool) (*domain.User, error) {
	args := m.Called(ctx, id, includeDigest)
	return userResult(args)
}

// GetByUsername is a mock implementation of store.UserStore.GetByUsername
func (m *TestifyMockUserStore) GetByUsername(
	ctx context.Context,
	username string,
	includeDigest bool,
) (*domain.User, error) {
	args := m.Called(ctx, username, includeDigest)
	return userResult(args)
}

// GetByEmailOrUsername is a mock implementation of store.UserStore.GetByEmailOrUsername
func (m *TestifyMockUserStore) GetByEmailOrUsername(ctx context.Context, query string) (*domain.User, error) {
	args := m.Called(ctx, query)
	return userResult(args)
}

// GetWithRelations is a mock implementation of store.UserStore.GetWithRelations
func (m *TestifyMockUserStore) GetWithRelations(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	return userResult(args)
}

func userResult(args mock.Arguments) (*domain.User, error) {
	if user, ok := args.Get(0).(*domain.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}
