package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wish is a gift a user would like to receive. Wishes are resolved by ID and
// attached to wishlists; the wishlist flows never construct them.
type Wish struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	Name        string    `json:"name"        validate:"required,min=1,max=250"`
	Link        string    `json:"link"        validate:"required,url"`
	Image       string    `json:"image"       validate:"required,url"`
	Price       float64   `json:"price"       validate:"gte=0"`
	Raised      float64   `json:"raised"`
	Description string    `json:"description" validate:"max=1024"`
	Copied      int       `json:"copied"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
