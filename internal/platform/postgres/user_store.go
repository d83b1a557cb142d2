package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/store"
)

const (
	userColumns           = "id, username, email, about, avatar, created_at, updated_at"
	userColumnsWithDigest = userColumns + ", password_hash"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO users (id, username, email, about, avatar, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.About,
		user.Avatar,
		user.HashedPassword,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		err = MapError(err)
		log.Debug("failed to insert user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "create", err)
	}

	log.Debug("user inserted", slog.String("user_id", user.ID.String()))
	return nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET username = $1, email = $2, about = $3, avatar = $4, password_hash = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(ctx, query,
		user.Username,
		user.Email,
		user.About,
		user.Avatar,
		user.HashedPassword,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		err = MapError(err)
		log.Debug("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return store.NewStoreError("user", "update", err)
	}

	if err := CheckRowsAffected(result, store.ErrUserNotFound); err != nil {
		return store.NewStoreError("user", "update", err)
	}
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id string, includeDigest bool) (*domain.User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.getOne(ctx, "id = $1", uid, includeDigest)
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(
	ctx context.Context,
	username string,
	includeDigest bool,
) (*domain.User, error) {
	return s.getOne(ctx, "username = $1", username, includeDigest)
}

// GetByEmailOrUsername implements store.UserStore.GetByEmailOrUsername
func (s *PostgresUserStore) GetByEmailOrUsername(ctx context.Context, query string) (*domain.User, error) {
	return s.getOne(ctx, "email = $1 OR username = $1", query, false)
}

// GetWithRelations implements store.UserStore.GetWithRelations
func (s *PostgresUserStore) GetWithRelations(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if user.Wishes, err = s.wishesOf(ctx, user.ID); err != nil {
		return nil, store.NewStoreError("user", "load wishes", err)
	}
	if user.Offers, err = s.offersOf(ctx, user.ID); err != nil {
		return nil, store.NewStoreError("user", "load offers", err)
	}
	if user.Wishlists, err = s.wishlistsOf(ctx, user.ID); err != nil {
		return nil, store.NewStoreError("user", "load wishlists", err)
	}
	return user, nil
}

func (s *PostgresUserStore) getOne(ctx context.Context, where string, arg any, includeDigest bool) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	columns := userColumns
	if includeDigest {
		columns = userColumnsWithDigest
	}

	var user domain.User
	dest := []any{
		&user.ID,
		&user.Username,
		&user.Email,
		&user.About,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	}
	if includeDigest {
		dest = append(dest, &user.HashedPassword)
	}

	err := s.db.QueryRowContext(ctx, "SELECT "+columns+" FROM users WHERE "+where, arg).Scan(dest...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("where", where))
			return nil, store.ErrUserNotFound
		}
		err = MapError(err)
		log.Error("failed to query user", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "get", err)
	}
	return &user, nil
}

func (s *PostgresUserStore) wishesOf(ctx context.Context, ownerID uuid.UUID) ([]domain.Wish, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+wishColumns+" FROM wishes WHERE owner_id = $1 ORDER BY created_at", ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	return scanWishes(rows)
}

func (s *PostgresUserStore) offersOf(ctx context.Context, userID uuid.UUID) ([]domain.Offer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, item_id, amount, hidden, created_at, updated_at
		FROM offers
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	offers := []domain.Offer{}
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(&o.ID, &o.UserID, &o.ItemID, &o.Amount, &o.Hidden, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (s *PostgresUserStore) wishlistsOf(ctx context.Context, ownerID uuid.UUID) ([]domain.Wishlist, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, name, description, image, created_at, updated_at
		FROM wishlists
		WHERE owner_id = $1
		ORDER BY created_at
	`, ownerID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	wishlists := []domain.Wishlist{}
	for rows.Next() {
		var w domain.Wishlist
		if err := rows.Scan(&w.ID, &w.OwnerID, &w.Name, &w.Description, &w.Image, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wishlists = append(wishlists, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	_ = rows.Close()

	for i := range wishlists {
		if wishlists[i].Items, err = itemsOf(ctx, s.db, wishlists[i].ID); err != nil {
			return nil, err
		}
	}
	return wishlists, nil
}
