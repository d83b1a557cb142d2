package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/giftlist-api/internal/api"
	apiMiddleware "github.com/phrazzld/giftlist-api/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(middleware.Recoverer)

	api.RegisterRoutes(r, api.Handlers{
		Auth:      api.NewAuthHandler(app.userService, app.authService, app.logger),
		Users:     api.NewUserHandler(app.userService, app.logger),
		Wishlists: api.NewWishlistHandler(app.wishlistService, app.userService, app.wishStore, app.logger),
	}, apiMiddleware.NewAuthMiddleware(app.jwtService).Authenticate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
