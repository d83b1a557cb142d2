package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wishlist is a named collection of wishes curated by its owner.
//
// OwnerID is fixed at creation. Items is replaced as a whole on update, never
// patched element by element.
type Wishlist struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"                  validate:"required,min=1,max=250"`
	Description string    `json:"description,omitempty" validate:"max=1500"`
	Image       string    `json:"image"                 validate:"required,url"`
	OwnerID     uuid.UUID `json:"-"                     validate:"required"`
	Owner       *User     `json:"owner,omitempty"       validate:"-"`
	Items       []Wish    `json:"items"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewWishlist builds a wishlist candidate owned by owner with the given items.
// A nil items slice is normalized to an empty one.
func NewWishlist(name, description, image string, owner *User, items []Wish) *Wishlist {
	now := time.Now().UTC()
	if items == nil {
		items = []Wish{}
	}
	w := &Wishlist{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Image:       image,
		Owner:       owner,
		Items:       items,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if owner != nil {
		w.OwnerID = owner.ID
	}
	return w
}
