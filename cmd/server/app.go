package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/giftlist-api/internal/config"
	"github.com/phrazzld/giftlist-api/internal/platform/postgres"
	"github.com/phrazzld/giftlist-api/internal/service"
	"github.com/phrazzld/giftlist-api/internal/service/auth"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore     store.UserStore
	wishlistStore store.WishlistStore
	wishStore     store.WishStore

	// Collaborators
	jwtService auth.JWTService
	hasher     auth.PasswordHasher

	// Services
	userService     service.UserService
	authService     service.AuthService
	wishlistService service.WishlistService
}

// newApplication wires stores, collaborators and services over an open
// database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.hasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.wishlistStore = postgres.NewPostgresWishlistStore(db, logger)
	app.wishStore = postgres.NewPostgresWishStore(db, logger)

	app.userService = service.NewUserService(app.userStore, app.hasher, logger)
	app.authService = service.NewAuthService(app.userService, app.hasher, app.jwtService, logger)
	app.wishlistService = service.NewWishlistService(app.wishlistStore, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is canceled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.String("error", err.Error()))
		}
	}
	app.logger.Info("application shutdown completed")
}
