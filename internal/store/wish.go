package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
)

// WishStore resolves wishes so they can be attached to wishlists. Wishes are
// created outside this service.
type WishStore interface {
	// FindManyByID resolves the given IDs to wishes. IDs that match no wish
	// are skipped; the result follows the order of ids.
	FindManyByID(ctx context.Context, ids []uuid.UUID) ([]domain.Wish, error)
}
