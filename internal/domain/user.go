package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults applied to optional profile fields of a new user.
const (
	DefaultAbout  = "Nothing about me yet"
	DefaultAvatar = "https://i.pravatar.cc/300"
)

// User represents a registered member of the registry.
//
// Password holds a plaintext password only while a create or update request is
// in flight; stores persist HashedPassword and never read Password.
// HashedPassword is populated on reads only when the caller explicitly asks
// for the digest.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"                 validate:"required,min=2,max=30"`
	Email          string    `json:"email,omitempty"          validate:"required,email"`
	About          string    `json:"about"                    validate:"max=200"`
	Avatar         string    `json:"avatar"                   validate:"omitempty,url"`
	Password       string    `json:"-"                        validate:"omitempty,min=3,bcryptmax"`
	HashedPassword string    `json:"-"                        validate:"required_without=Password"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`

	// Relations, populated only by relation-expanding reads.
	Wishes    []Wish     `json:"wishes,omitempty"`
	Offers    []Offer    `json:"offers,omitempty"`
	Wishlists []Wishlist `json:"wishlists,omitempty"`
}

// NewUser builds a user candidate with a fresh ID, timestamps and profile
// defaults. The candidate is not validated; callers run Validate once all
// fields are in place.
func NewUser(username, email, password string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		About:     DefaultAbout,
		Avatar:    DefaultAvatar,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Public returns a copy of the user without any password material.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Password = ""
	c.HashedPassword = ""
	return &c
}
