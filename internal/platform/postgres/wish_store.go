package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/store"
)

const wishColumns = "id, owner_id, name, link, image, price, raised, description, copied, created_at, updated_at"

// PostgresWishStore implements the store.WishStore interface
// using a PostgreSQL database as the storage backend.
type PostgresWishStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// Ensure PostgresWishStore implements store.WishStore interface
var _ store.WishStore = (*PostgresWishStore)(nil)

// NewPostgresWishStore creates a new PostgreSQL implementation of the WishStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresWishStore(db store.DBTX, logger *slog.Logger) *PostgresWishStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresWishStore{
		db:     db,
		logger: logger.With(slog.String("component", "wish_store")),
	}
}

// FindManyByID implements store.WishStore.FindManyByID
func (s *PostgresWishStore) FindManyByID(ctx context.Context, ids []uuid.UUID) ([]domain.Wish, error) {
	if len(ids) == 0 {
		return []domain.Wish{}, nil
	}

	log := logger.FromContextOrDefault(ctx, s.logger)

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := "SELECT " + wishColumns + " FROM wishes WHERE id IN (" + strings.Join(placeholders, ", ") + ")"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		err = MapError(err)
		log.Error("failed to query wishes", slog.String("error", err.Error()))
		return nil, store.NewStoreError("wish", "find many", err)
	}
	found, err := scanWishes(rows)
	if err != nil {
		return nil, store.NewStoreError("wish", "find many", MapError(err))
	}

	byID := make(map[uuid.UUID]domain.Wish, len(found))
	for _, w := range found {
		byID[w.ID] = w
	}
	ordered := make([]domain.Wish, 0, len(found))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if w, ok := byID[id]; ok && !seen[id] {
			ordered = append(ordered, w)
			seen[id] = true
		}
	}
	log.Debug("wishes resolved",
		slog.Int("requested", len(ids)),
		slog.Int("found", len(ordered)))
	return ordered, nil
}

// scanWishes reads wishColumns rows and closes rows.
func scanWishes(rows *sql.Rows) ([]domain.Wish, error) {
	defer func() { _ = rows.Close() }()

	wishes := []domain.Wish{}
	for rows.Next() {
		w, err := scanWish(rows)
		if err != nil {
			return nil, err
		}
		wishes = append(wishes, w)
	}
	return wishes, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWish(row rowScanner) (domain.Wish, error) {
	var w domain.Wish
	err := row.Scan(
		&w.ID,
		&w.OwnerID,
		&w.Name,
		&w.Link,
		&w.Image,
		&w.Price,
		&w.Raised,
		&w.Description,
		&w.Copied,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	return w, err
}

// itemsOf loads the wishes linked to a wishlist in list order.
func itemsOf(ctx context.Context, db store.DBTX, wishlistID uuid.UUID) ([]domain.Wish, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT w.id, w.owner_id, w.name, w.link, w.image, w.price, w.raised, w.description, w.copied, w.created_at, w.updated_at
		FROM wishlist_items wi
		JOIN wishes w ON w.id = wi.wish_id
		WHERE wi.wishlist_id = $1
		ORDER BY wi.position
	`, wishlistID)
	if err != nil {
		return nil, MapError(err)
	}
	return scanWishes(rows)
}
