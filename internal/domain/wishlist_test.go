package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWishlist(t *testing.T) {
	t.Parallel()

	owner := NewUser("ann", "a@x.com", "secret1")
	wish := Wish{ID: uuid.New(), Name: "Kettle"}

	w := NewWishlist("Bday", "", "http://i", owner, []Wish{wish})

	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.Equal(t, owner.ID, w.OwnerID)
	assert.Same(t, owner, w.Owner)
	assert.Equal(t, []Wish{wish}, w.Items)
	assert.NoError(t, Validate(w))
}

func TestNewWishlistNilItems(t *testing.T) {
	t.Parallel()

	w := NewWishlist("Bday", "", "http://i", NewUser("ann", "a@x.com", "secret1"), nil)

	require.NotNil(t, w.Items)
	assert.Empty(t, w.Items)
}

func TestWishlistValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(w *Wishlist)
		wantField string
	}{
		{name: "valid", mutate: func(w *Wishlist) {}},
		{name: "missing name", mutate: func(w *Wishlist) { w.Name = "" }, wantField: "name"},
		{
			name:      "name too long",
			mutate:    func(w *Wishlist) { w.Name = strings.Repeat("n", 251) },
			wantField: "name",
		},
		{name: "image not a URL", mutate: func(w *Wishlist) { w.Image = "pic" }, wantField: "image"},
		{name: "missing image", mutate: func(w *Wishlist) { w.Image = "" }, wantField: "image"},
		{
			name:      "description too long",
			mutate:    func(w *Wishlist) { w.Description = strings.Repeat("d", 1501) },
			wantField: "description",
		},
		{name: "missing owner", mutate: func(w *Wishlist) { w.OwnerID = uuid.Nil }, wantField: "ownerID"},
		{
			name: "owner without digest is not validated",
			mutate: func(w *Wishlist) {
				w.Owner = &User{ID: w.OwnerID}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := NewWishlist("Bday", "", "http://i", NewUser("ann", "a@x.com", "secret1"), nil)
			tt.mutate(w)
			err := Validate(w)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Len(t, vErr.Violations, 1)
			assert.Equal(t, tt.wantField, vErr.Violations[0].Field)
		})
	}
}
