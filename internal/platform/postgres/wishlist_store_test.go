package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wishlistOwnerColumns = []string{
	"id", "owner_id", "name", "description", "image", "created_at", "updated_at",
	"id", "username", "email", "about", "avatar", "created_at", "updated_at",
}

func testWishlist(items ...domain.Wish) *domain.Wishlist {
	owner := testUser().Public()
	w := domain.NewWishlist("Bday", "", "http://i", owner, items)
	w.CreatedAt, w.UpdatedAt = fixedTime, fixedTime
	return w
}

func TestPostgresWishlistStore_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("links items in order within one transaction", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		first, second := domain.Wish{ID: uuid.New()}, domain.Wish{ID: uuid.New()}
		w := testWishlist(first, second)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wishlists")).
			WithArgs(w.ID, w.OwnerID, "Bday", "", "http://i", fixedTime, fixedTime).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wishlist_items")).
			WithArgs(w.ID, first.ID, 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wishlist_items")).
			WithArgs(w.ID, second.ID, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.Create(ctx, w))
	})

	t.Run("unknown item rolls back", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		w := testWishlist(domain.Wish{ID: uuid.New()})

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wishlists")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wishlist_items")).
			WillReturnError(newPgError(foreignKeyViolationCode))
		mock.ExpectRollback()

		err := s.Create(ctx, w)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("begin failure", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		beginErr := errors.New("too many connections")

		mock.ExpectBegin().WillReturnError(beginErr)

		assert.ErrorIs(t, s.Create(ctx, testWishlist()), beginErr)
	})
}

func TestPostgresWishlistStore_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("replaces item links", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		item := domain.Wish{ID: uuid.New()}
		w := testWishlist(item)
		w.Name = "Xmas"

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE wishlists")).
			WithArgs("Xmas", "", "http://i", fixedTime, w.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM wishlist_items WHERE wishlist_id = $1")).
			WithArgs(w.ID).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO wishlist_items")).
			WithArgs(w.ID, item.ID, 0).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.Update(ctx, w))
	})

	t.Run("missing wishlist rolls back", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE wishlists")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		assert.ErrorIs(t, s.Update(ctx, testWishlist()), store.ErrWishlistNotFound)
	})
}

func TestPostgresWishlistStore_GetByID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("expands owner and items", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		w := testWishlist()
		owner := w.Owner
		itemID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE wl.id = $1")).
			WithArgs(w.ID).
			WillReturnRows(sqlmock.NewRows(wishlistOwnerColumns).AddRow(
				w.ID.String(), owner.ID.String(), "Bday", "", "http://i", fixedTime, fixedTime,
				owner.ID.String(), owner.Username, owner.Email, owner.About, owner.Avatar, fixedTime, fixedTime))
		mock.ExpectQuery(regexp.QuoteMeta("FROM wishlist_items wi")).
			WithArgs(w.ID).
			WillReturnRows(wishRow(sqlmock.NewRows(wishColumnNames), itemID, owner.ID, "kettle"))

		got, err := s.GetByID(ctx, w.ID.String())
		require.NoError(t, err)
		assert.Equal(t, w.ID, got.ID)
		require.NotNil(t, got.Owner)
		assert.Equal(t, "ann", got.Owner.Username)
		assert.Empty(t, got.Owner.HashedPassword)
		require.Len(t, got.Items, 1)
		assert.Equal(t, itemID, got.Items[0].ID)
	})

	t.Run("missing row", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE wl.id = $1")).
			WillReturnRows(sqlmock.NewRows(wishlistOwnerColumns))

		_, err := s.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrWishlistNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		t.Parallel()
		db, _ := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())

		_, err := s.GetByID(ctx, "42")
		assert.ErrorIs(t, err, store.ErrInvalidID)
	})
}

func TestPostgresWishlistStore_List(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, mock := newMockDB(t)
	s := NewPostgresWishlistStore(db, discardLogger())

	owner := testUser()
	first, second := uuid.New(), uuid.New()
	rows := sqlmock.NewRows(wishlistOwnerColumns)
	for _, id := range []uuid.UUID{first, second} {
		rows.AddRow(id.String(), owner.ID.String(), "list", "", "http://i", fixedTime, fixedTime,
			owner.ID.String(), owner.Username, owner.Email, owner.About, owner.Avatar, fixedTime, fixedTime)
	}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY wl.created_at")).WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM wishlist_items wi")).
		WithArgs(first).
		WillReturnRows(sqlmock.NewRows(wishColumnNames))
	mock.ExpectQuery(regexp.QuoteMeta("FROM wishlist_items wi")).
		WithArgs(second).
		WillReturnRows(wishRow(sqlmock.NewRows(wishColumnNames), uuid.New(), owner.ID, "lamp"))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.NotNil(t, got[0].Items)
	assert.Empty(t, got[0].Items)
	assert.Len(t, got[1].Items, 1)
}

func TestPostgresWishlistStore_GetOwnerID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		id, owner := uuid.New(), uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM wishlists WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"owner_id"}).AddRow(owner.String()))

		got, err := s.GetOwnerID(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, owner, got)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT owner_id FROM wishlists")).
			WillReturnRows(sqlmock.NewRows([]string{"owner_id"}))

		_, err := s.GetOwnerID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrWishlistNotFound)
	})
}

func TestPostgresWishlistStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM wishlists WHERE id = $1")).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, s.Delete(ctx, id.String()))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		db, mock := newMockDB(t)
		s := NewPostgresWishlistStore(db, discardLogger())

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM wishlists")).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Delete(ctx, uuid.NewString()), store.ErrWishlistNotFound)
	})
}
