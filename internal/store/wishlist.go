package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
)

// WishlistStore defines the interface for wishlist data persistence.
//
// Reads that return a wishlist expand its owner (without digest) and items.
type WishlistStore interface {
	// Create inserts the wishlist and links its items atomically.
	Create(ctx context.Context, wishlist *domain.Wishlist) error

	// Update overwrites name, description and image and replaces the item
	// links with wishlist.Items, atomically. The owner is never changed.
	// Returns ErrWishlistNotFound if the wishlist does not exist.
	Update(ctx context.Context, wishlist *domain.Wishlist) error

	// GetByID retrieves a wishlist with owner and items.
	// Returns ErrInvalidID for a malformed ID and ErrWishlistNotFound for a missing row.
	GetByID(ctx context.Context, id string) (*domain.Wishlist, error)

	// GetOwnerID reads only the owner ID of a wishlist.
	GetOwnerID(ctx context.Context, id string) (uuid.UUID, error)

	// List retrieves all wishlists with owner and items.
	List(ctx context.Context) ([]*domain.Wishlist, error)

	// Delete removes the wishlist and its item links.
	// Returns ErrWishlistNotFound if the wishlist does not exist.
	Delete(ctx context.Context, id string) error
}
