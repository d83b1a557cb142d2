package api

// SignupRequest defines the payload for the registration endpoint. Field
// constraints beyond presence are enforced by the user service.
type SignupRequest struct {
	Username string  `json:"username" validate:"required"`
	Email    string  `json:"email"    validate:"required"`
	Password string  `json:"password" validate:"required"`
	About    *string `json:"about"`
	Avatar   *string `json:"avatar"`
}

// SigninRequest defines the payload for the sign-in endpoint.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by a successful sign-in.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UpdateUserRequest is a partial profile update; omitted fields are kept.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	About    *string `json:"about"`
	Avatar   *string `json:"avatar"`
	Password *string `json:"password"`
}

// FindUserRequest looks a user up by email or username.
type FindUserRequest struct {
	Query string `json:"query" validate:"required"`
}

// CreateWishlistRequest defines the payload for creating a wishlist.
// ItemsID lists the wishes to attach, in order.
type CreateWishlistRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Image       string   `json:"image"`
	ItemsID     []string `json:"itemsId" validate:"omitempty,dive,uuid"`
}

// UpdateWishlistRequest is a partial wishlist update. A non-empty ItemsID
// replaces the items; an empty or missing one keeps them.
type UpdateWishlistRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	ItemsID     []string `json:"itemsId" validate:"omitempty,dive,uuid"`
}
