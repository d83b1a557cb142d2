package store

import (
	"context"

	"github.com/phrazzld/giftlist-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
//
// IDs are passed as strings exactly as callers received them. Implementations
// report ErrInvalidID when an ID is malformed and ErrUserNotFound when a
// well-formed ID matches no row.
type UserStore interface {
	// Create inserts a new user. The user must carry a HashedPassword.
	// Returns ErrDuplicate if the username or email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// Update overwrites the mutable fields of an existing user, including the
	// digest. Returns ErrDuplicate on a username or email collision.
	Update(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID. The digest is loaded only when
	// includeDigest is true.
	GetByID(ctx context.Context, id string, includeDigest bool) (*domain.User, error)

	// GetByUsername retrieves a user by exact username. The digest is loaded
	// only when includeDigest is true.
	GetByUsername(ctx context.Context, username string, includeDigest bool) (*domain.User, error)

	// GetByEmailOrUsername retrieves the user whose email or username equals
	// query. The digest is never loaded.
	GetByEmailOrUsername(ctx context.Context, query string) (*domain.User, error)

	// GetWithRelations retrieves a user together with the wishes, offers and
	// wishlists it owns. The digest is never loaded.
	GetWithRelations(ctx context.Context, id string) (*domain.User, error)
}
