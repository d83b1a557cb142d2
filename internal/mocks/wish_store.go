package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// MockWishStore is an in-memory store.WishStore.
type MockWishStore struct {
	FindManyByIDFn func(ctx context.Context, ids []uuid.UUID) ([]domain.Wish, error)

	mu     sync.Mutex
	wishes map[uuid.UUID]domain.Wish
}

var _ store.WishStore = (*MockWishStore)(nil)

// NewMockWishStore creates an in-memory wish store seeded with wishes.
func NewMockWishStore(wishes ...domain.Wish) *MockWishStore {
	m := &MockWishStore{wishes: make(map[uuid.UUID]domain.Wish)}
	for _, w := range wishes {
		m.wishes[w.ID] = w
	}
	return m
}

// FindManyByID implements store.WishStore. Unknown IDs are skipped.
func (m *MockWishStore) FindManyByID(ctx context.Context, ids []uuid.UUID) ([]domain.Wish, error) {
	if m.FindManyByIDFn != nil {
		return m.FindManyByIDFn(ctx, ids)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	found := make([]domain.Wish, 0, len(ids))
	for _, id := range ids {
		if w, ok := m.wishes[id]; ok {
			found = append(found, w)
		}
	}
	return found, nil
}
