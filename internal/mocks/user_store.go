package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// MockUserStore is an in-memory store.UserStore. It enforces username and
// email uniqueness the way the database does and rejects malformed IDs with
// store.ErrInvalidID. Any Fn field overrides the default behavior.
type MockUserStore struct {
	CreateFn               func(ctx context.Context, user *domain.User) error
	UpdateFn               func(ctx context.Context, user *domain.User) error
	GetByIDFn              func(ctx context.Context, id string, includeDigest bool) (*domain.User, error)
	GetByUsernameFn        func(ctx context.Context, username string, includeDigest bool) (*domain.User, error)
	GetByEmailOrUsernameFn func(ctx context.Context, query string) (*domain.User, error)
	GetWithRelationsFn     func(ctx context.Context, id string) (*domain.User, error)

	// Wishlists, when set, supplies the wishlists returned by GetWithRelations.
	Wishlists *MockWishlistStore

	mu    sync.Mutex
	users map[uuid.UUID]domain.User
}

var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates an empty in-memory user store.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[uuid.UUID]domain.User)}
}

// Create implements store.UserStore.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.ID]; exists {
		return store.ErrDuplicate
	}
	if m.takenLocked(user) {
		return store.NewStoreError("user", "create", store.ErrDuplicate)
	}
	m.users[user.ID] = persisted(user)
	return nil
}

// Update implements store.UserStore.
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.ID]; !exists {
		return store.ErrUserNotFound
	}
	if m.takenLocked(user) {
		return store.NewStoreError("user", "update", store.ErrDuplicate)
	}
	m.users[user.ID] = persisted(user)
	return nil
}

// GetByID implements store.UserStore.
func (m *MockUserStore) GetByID(ctx context.Context, id string, includeDigest bool) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id, includeDigest)
	}

	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[uid]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return project(u, includeDigest), nil
}

// GetByUsername implements store.UserStore.
func (m *MockUserStore) GetByUsername(ctx context.Context, username string, includeDigest bool) (*domain.User, error) {
	if m.GetByUsernameFn != nil {
		return m.GetByUsernameFn(ctx, username, includeDigest)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return project(u, includeDigest), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByEmailOrUsername implements store.UserStore.
func (m *MockUserStore) GetByEmailOrUsername(ctx context.Context, query string) (*domain.User, error) {
	if m.GetByEmailOrUsernameFn != nil {
		return m.GetByEmailOrUsernameFn(ctx, query)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == query || u.Email == query {
			return project(u, false), nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetWithRelations implements store.UserStore.
func (m *MockUserStore) GetWithRelations(ctx context.Context, id string) (*domain.User, error) {
	if m.GetWithRelationsFn != nil {
		return m.GetWithRelationsFn(ctx, id)
	}

	user, err := m.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	user.Wishes = []domain.Wish{}
	user.Offers = []domain.Offer{}
	user.Wishlists = []domain.Wishlist{}
	if m.Wishlists != nil {
		user.Wishlists = m.Wishlists.ownedBy(user.ID)
	}
	return user, nil
}

// Stored returns the persisted row for id, digest included, for assertions.
func (m *MockUserStore) Stored(id uuid.UUID) (domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	return u, ok
}

func (m *MockUserStore) takenLocked(user *domain.User) bool {
	for id, u := range m.users {
		if id == user.ID {
			continue
		}
		if u.Username == user.Username || u.Email == user.Email {
			return true
		}
	}
	return false
}

// persisted mimics a database row: no plaintext and no relations.
func persisted(user *domain.User) domain.User {
	u := *user
	u.Password = ""
	u.Wishes, u.Offers, u.Wishlists = nil, nil, nil
	return u
}

func project(u domain.User, includeDigest bool) *domain.User {
	if !includeDigest {
		u.HashedPassword = ""
	}
	return &u
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, store.ErrInvalidID
	}
	return uid, nil
}
