package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrorsAreDistinct(t *testing.T) {
	kinds := []error{ErrInvalidInput, ErrConflict, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrFatal}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestError(t *testing.T) {
	cause := errors.New("database connection failed")

	withCause := NewError("create user", ErrFatal, "internal failure", cause)
	assert.Equal(t, "create user: internal failure: database connection failed", withCause.Error())
	assert.ErrorIs(t, withCause, ErrFatal)
	assert.ErrorIs(t, withCause, cause)

	noCause := NewError("find user", ErrInvalidInput, "no user with this email", nil)
	assert.Equal(t, "find user: no user with this email", noCause.Error())
	assert.ErrorIs(t, noCause, ErrInvalidInput)

	wrapped := fmt.Errorf("handler: %w", noCause)
	var svcErr *Error
	require.ErrorAs(t, wrapped, &svcErr)
	assert.Equal(t, "no user with this email", svcErr.Message)
}

func TestClassifyStoreError(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	msgs := errorMessages{
		Conflict:     "user with this email or username already exists",
		InvalidID:    "no such user",
		NotFound:     "no user with this username",
		NotFoundKind: ErrInvalidInput,
	}

	tests := []struct {
		name     string
		err      error
		msgs     errorMessages
		wantKind error
		wantMsg  string
	}{
		{"duplicate", store.NewStoreError("user", "create", store.ErrDuplicate), msgs, ErrConflict, msgs.Conflict},
		{"malformed id", store.ErrInvalidID, msgs, ErrInvalidInput, "no such user"},
		{"folded not found", store.ErrUserNotFound, msgs, ErrInvalidInput, "no user with this username"},
		{"plain not found", store.ErrWishlistNotFound, errorMessages{}, ErrNotFound, "not found"},
		{"invalid entity", store.ErrInvalidEntity, msgs, ErrInvalidInput, "entity violates a storage constraint"},
		{"unclassified", errors.New("connection reset"), msgs, ErrFatal, "internal failure"},
		{"canceled", context.Canceled, msgs, ErrFatal, "internal failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyStoreError(context.Background(), log, "op", tt.err, tt.msgs)

			var svcErr *Error
			require.ErrorAs(t, err, &svcErr)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestValidationError(t *testing.T) {
	verr := domain.Validate(&domain.Wishlist{})
	require.Error(t, verr)

	err := validationError("create wishlist", verr)

	var svcErr *Error
	require.ErrorAs(t, err, &svcErr)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotEmpty(t, svcErr.Violations)
}
