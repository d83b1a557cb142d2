package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNonStruct(t *testing.T) {
	t.Parallel()

	err := Validate("not a struct")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	var vErr *ValidationError
	assert.False(t, errors.As(err, &vErr))
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Violations: []Violation{
		{Field: "username", Constraint: "required", Message: "username is required"},
		{Field: "email", Constraint: "email", Message: "email must be a valid email address"},
	}}

	assert.Equal(t,
		"validation failed: username is required; email must be a valid email address",
		err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestViolationMessages(t *testing.T) {
	t.Parallel()

	u := NewUser("a", "nope", "12")
	u.Avatar = "nope"

	err := Validate(u)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	byField := map[string]Violation{}
	for _, v := range vErr.Violations {
		byField[v.Field] = v
	}
	assert.Equal(t, "username must be at least 2 characters long", byField["username"].Message)
	assert.Equal(t, "email must be a valid email address", byField["email"].Message)
	assert.Equal(t, "avatar must be a valid URL", byField["avatar"].Message)
	assert.Equal(t, "min", byField["password"].Constraint)
}

func TestViolationMessagePasswordBytes(t *testing.T) {
	t.Parallel()

	err := Validate(NewUser("ann", "a@x.com", strings.Repeat("é", 40)))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Violations, 1)
	assert.Equal(t, "bcryptmax", vErr.Violations[0].Constraint)
	assert.Equal(t, "password must be at most 72 bytes long", vErr.Violations[0].Message)
}
