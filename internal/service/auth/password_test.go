package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", digest)

	assert.NoError(t, hasher.Compare(digest, "123456"))
	assert.ErrorIs(t, hasher.Compare(digest, "654321"), ErrPasswordMismatch)
}

func TestBcryptHasher_SaltedDigests(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	first, err := hasher.Hash("123456")
	require.NoError(t, err)
	second, err := hasher.Hash("123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_Cost(t *testing.T) {
	t.Parallel()

	digest, err := NewBcryptHasher(bcrypt.MinCost).Hash("123456")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(1).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
}

func TestBcryptHasher_Errors(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)

	err = hasher.Compare("not-a-digest", "123456")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPasswordMismatch)
}
