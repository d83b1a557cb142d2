package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// MockWishlistStore is an in-memory store.WishlistStore. Reads expand the
// owner from Users when it is set, and otherwise return the owner snapshot
// taken at creation. Any Fn field overrides the default behavior.
type MockWishlistStore struct {
	CreateFn     func(ctx context.Context, wishlist *domain.Wishlist) error
	UpdateFn     func(ctx context.Context, wishlist *domain.Wishlist) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.Wishlist, error)
	GetOwnerIDFn func(ctx context.Context, id string) (uuid.UUID, error)
	ListFn       func(ctx context.Context) ([]*domain.Wishlist, error)
	DeleteFn     func(ctx context.Context, id string) error

	Users *MockUserStore

	mu        sync.Mutex
	wishlists map[uuid.UUID]domain.Wishlist
}

var _ store.WishlistStore = (*MockWishlistStore)(nil)

// NewMockWishlistStore creates an empty in-memory wishlist store.
func NewMockWishlistStore(users *MockUserStore) *MockWishlistStore {
	return &MockWishlistStore{
		Users:     users,
		wishlists: make(map[uuid.UUID]domain.Wishlist),
	}
}

// Create implements store.WishlistStore.
func (m *MockWishlistStore) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, wishlist)
	}

	if m.Users != nil {
		if _, ok := m.Users.Stored(wishlist.OwnerID); !ok {
			return store.NewStoreError("wishlist", "create", store.ErrInvalidEntity)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.wishlists[wishlist.ID]; exists {
		return store.ErrDuplicate
	}
	m.wishlists[wishlist.ID] = cloneWishlist(*wishlist)
	return nil
}

// Update implements store.WishlistStore.
func (m *MockWishlistStore) Update(ctx context.Context, wishlist *domain.Wishlist) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, wishlist)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.wishlists[wishlist.ID]
	if !ok {
		return store.ErrWishlistNotFound
	}
	updated := cloneWishlist(*wishlist)
	updated.OwnerID = existing.OwnerID
	updated.Owner = existing.Owner
	updated.CreatedAt = existing.CreatedAt
	m.wishlists[wishlist.ID] = updated
	return nil
}

// GetByID implements store.WishlistStore.
func (m *MockWishlistStore) GetByID(ctx context.Context, id string) (*domain.Wishlist, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	wid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	w, ok := m.wishlists[wid]
	m.mu.Unlock()
	if !ok {
		return nil, store.ErrWishlistNotFound
	}
	return m.expand(w), nil
}

// GetOwnerID implements store.WishlistStore.
func (m *MockWishlistStore) GetOwnerID(ctx context.Context, id string) (uuid.UUID, error) {
	if m.GetOwnerIDFn != nil {
		return m.GetOwnerIDFn(ctx, id)
	}

	wid, err := parseID(id)
	if err != nil {
		return uuid.Nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wishlists[wid]
	if !ok {
		return uuid.Nil, store.ErrWishlistNotFound
	}
	return w.OwnerID, nil
}

// List implements store.WishlistStore. Wishlists are ordered by creation time.
func (m *MockWishlistStore) List(ctx context.Context) ([]*domain.Wishlist, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	rows := make([]domain.Wishlist, 0, len(m.wishlists))
	for _, w := range m.wishlists {
		rows = append(rows, w)
	}
	m.mu.Unlock()

	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })

	result := make([]*domain.Wishlist, 0, len(rows))
	for _, w := range rows {
		result = append(result, m.expand(w))
	}
	return result, nil
}

// Delete implements store.WishlistStore.
func (m *MockWishlistStore) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	wid, err := parseID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.wishlists[wid]; !ok {
		return store.ErrWishlistNotFound
	}
	delete(m.wishlists, wid)
	return nil
}

// Count returns the number of stored wishlists.
func (m *MockWishlistStore) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.wishlists)
}

func (m *MockWishlistStore) ownedBy(ownerID uuid.UUID) []domain.Wishlist {
	m.mu.Lock()
	defer m.mu.Unlock()

	owned := []domain.Wishlist{}
	for _, w := range m.wishlists {
		if w.OwnerID == ownerID {
			c := cloneWishlist(w)
			c.Owner = nil
			owned = append(owned, c)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.Before(owned[j].CreatedAt) })
	return owned
}

func (m *MockWishlistStore) expand(w domain.Wishlist) *domain.Wishlist {
	c := cloneWishlist(w)
	if m.Users != nil {
		if owner, ok := m.Users.Stored(c.OwnerID); ok {
			c.Owner = project(owner, false)
		}
	}
	return &c
}

func cloneWishlist(w domain.Wishlist) domain.Wishlist {
	items := make([]domain.Wish, len(w.Items))
	copy(items, w.Items)
	w.Items = items
	if w.Owner != nil {
		w.Owner = w.Owner.Public()
	}
	return w
}
