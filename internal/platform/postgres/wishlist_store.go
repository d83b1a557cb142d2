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

const wishlistWithOwnerQuery = `
	SELECT wl.id, wl.owner_id, wl.name, wl.description, wl.image, wl.created_at, wl.updated_at,
	       u.id, u.username, u.email, u.about, u.avatar, u.created_at, u.updated_at
	FROM wishlists wl
	JOIN users u ON u.id = wl.owner_id
`

// PostgresWishlistStore implements the store.WishlistStore interface
// using a PostgreSQL database as the storage backend. Writes that touch the
// item links run in a transaction.
type PostgresWishlistStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// Ensure PostgresWishlistStore implements store.WishlistStore interface
var _ store.WishlistStore = (*PostgresWishlistStore)(nil)

// NewPostgresWishlistStore creates a new PostgreSQL implementation of the WishlistStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresWishlistStore(db *sql.DB, logger *slog.Logger) *PostgresWishlistStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresWishlistStore{
		db:     db,
		logger: logger.With(slog.String("component", "wishlist_store")),
	}
}

// Create implements store.WishlistStore.Create
func (s *PostgresWishlistStore) Create(ctx context.Context, wishlist *domain.Wishlist) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO wishlists (id, owner_id, name, description, image, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			wishlist.ID,
			wishlist.OwnerID,
			wishlist.Name,
			wishlist.Description,
			wishlist.Image,
			wishlist.CreatedAt,
			wishlist.UpdatedAt,
		)
		if err != nil {
			return MapError(err)
		}
		return insertItems(ctx, tx, wishlist.ID, wishlist.Items)
	})
	if err != nil {
		log.Debug("failed to create wishlist",
			slog.String("error", err.Error()),
			slog.String("wishlist_id", wishlist.ID.String()))
		return store.NewStoreError("wishlist", "create", err)
	}

	log.Debug("wishlist created",
		slog.String("wishlist_id", wishlist.ID.String()),
		slog.Int("items", len(wishlist.Items)))
	return nil
}

// Update implements store.WishlistStore.Update
func (s *PostgresWishlistStore) Update(ctx context.Context, wishlist *domain.Wishlist) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE wishlists
			SET name = $1, description = $2, image = $3, updated_at = $4
			WHERE id = $5
		`,
			wishlist.Name,
			wishlist.Description,
			wishlist.Image,
			wishlist.UpdatedAt,
			wishlist.ID,
		)
		if err != nil {
			return MapError(err)
		}
		if err := CheckRowsAffected(result, store.ErrWishlistNotFound); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM wishlist_items WHERE wishlist_id = $1", wishlist.ID); err != nil {
			return MapError(err)
		}
		return insertItems(ctx, tx, wishlist.ID, wishlist.Items)
	})
	if err != nil {
		log.Debug("failed to update wishlist",
			slog.String("error", err.Error()),
			slog.String("wishlist_id", wishlist.ID.String()))
		return store.NewStoreError("wishlist", "update", err)
	}
	return nil
}

// GetByID implements store.WishlistStore.GetByID
func (s *PostgresWishlistStore) GetByID(ctx context.Context, id string) (*domain.Wishlist, error) {
	wid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	wishlist, err := scanWishlistWithOwner(s.db.QueryRowContext(ctx, wishlistWithOwnerQuery+"WHERE wl.id = $1", wid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrWishlistNotFound
		}
		return nil, store.NewStoreError("wishlist", "get", MapError(err))
	}

	if wishlist.Items, err = itemsOf(ctx, s.db, wishlist.ID); err != nil {
		return nil, store.NewStoreError("wishlist", "load items", err)
	}
	return wishlist, nil
}

// GetOwnerID implements store.WishlistStore.GetOwnerID
func (s *PostgresWishlistStore) GetOwnerID(ctx context.Context, id string) (uuid.UUID, error) {
	wid, err := parseID(id)
	if err != nil {
		return uuid.Nil, err
	}

	var ownerID uuid.UUID
	err = s.db.QueryRowContext(ctx, "SELECT owner_id FROM wishlists WHERE id = $1", wid).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, store.ErrWishlistNotFound
		}
		return uuid.Nil, store.NewStoreError("wishlist", "get owner", MapError(err))
	}
	return ownerID, nil
}

// List implements store.WishlistStore.List
func (s *PostgresWishlistStore) List(ctx context.Context) ([]*domain.Wishlist, error) {
	rows, err := s.db.QueryContext(ctx, wishlistWithOwnerQuery+"ORDER BY wl.created_at")
	if err != nil {
		return nil, store.NewStoreError("wishlist", "list", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	wishlists := []*domain.Wishlist{}
	for rows.Next() {
		w, err := scanWishlistWithOwner(rows)
		if err != nil {
			return nil, store.NewStoreError("wishlist", "list", err)
		}
		wishlists = append(wishlists, w)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("wishlist", "list", MapError(err))
	}
	_ = rows.Close()

	for _, w := range wishlists {
		if w.Items, err = itemsOf(ctx, s.db, w.ID); err != nil {
			return nil, store.NewStoreError("wishlist", "load items", err)
		}
	}
	return wishlists, nil
}

// Delete implements store.WishlistStore.Delete. Item links are removed by
// the ON DELETE CASCADE of wishlist_items.
func (s *PostgresWishlistStore) Delete(ctx context.Context, id string) error {
	wid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM wishlists WHERE id = $1", wid)
	if err != nil {
		return store.NewStoreError("wishlist", "delete", MapError(err))
	}
	if err := CheckRowsAffected(result, store.ErrWishlistNotFound); err != nil {
		return store.NewStoreError("wishlist", "delete", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("wishlist deleted", slog.String("wishlist_id", wid.String()))
	return nil
}

func insertItems(ctx context.Context, tx *sql.Tx, wishlistID uuid.UUID, items []domain.Wish) error {
	for i, item := range items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO wishlist_items (wishlist_id, wish_id, position) VALUES ($1, $2, $3)",
			wishlistID, item.ID, i)
		if err != nil {
			return MapError(err)
		}
	}
	return nil
}

func scanWishlistWithOwner(row rowScanner) (*domain.Wishlist, error) {
	var w domain.Wishlist
	var owner domain.User
	err := row.Scan(
		&w.ID,
		&w.OwnerID,
		&w.Name,
		&w.Description,
		&w.Image,
		&w.CreatedAt,
		&w.UpdatedAt,
		&owner.ID,
		&owner.Username,
		&owner.Email,
		&owner.About,
		&owner.Avatar,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	w.Owner = &owner
	w.Items = []domain.Wish{}
	return &w, nil
}
