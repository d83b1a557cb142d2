package domain

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a contribution pledged by a user toward a wish.
type Offer struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	ItemID    uuid.UUID `json:"itemId"`
	Amount    float64   `json:"amount"`
	Hidden    bool      `json:"hidden"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
