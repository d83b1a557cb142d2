package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups the handlers mounted by RegisterRoutes.
type Handlers struct {
	Auth      *AuthHandler
	Users     *UserHandler
	Wishlists *WishlistHandler
}

// RegisterRoutes mounts the public and authenticated endpoints on r.
// authenticate guards every route except sign-up and sign-in.
func RegisterRoutes(r chi.Router, h Handlers, authenticate func(http.Handler) http.Handler) {
	r.Post("/signup", h.Auth.Signup)
	r.Post("/signin", h.Auth.Signin)

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Route("/users", func(r chi.Router) {
			r.Get("/me", h.Users.Me)
			r.Patch("/me", h.Users.UpdateMe)
			r.Post("/find", h.Users.Find)
			r.Get("/{username}", h.Users.ByUsername)
		})

		r.Route("/wishlists", func(r chi.Router) {
			r.Get("/", h.Wishlists.List)
			r.Post("/", h.Wishlists.Create)
			r.Get("/{id}", h.Wishlists.Get)
			r.Patch("/{id}", h.Wishlists.Update)
			r.Delete("/{id}", h.Wishlists.Delete)
		})
	})
}
