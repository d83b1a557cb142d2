package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user := NewUser("ann", "a@x.com", "secret1")

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ann", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "secret1", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.Equal(t, DefaultAbout, user.About)
	assert.Equal(t, DefaultAvatar, user.Avatar)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.UpdatedAt)
	assert.NoError(t, Validate(user))
}

func TestUserValidate(t *testing.T) {
	t.Parallel()

	valid := func() *User {
		u := NewUser("ann", "a@x.com", "secret1")
		return u
	}

	tests := []struct {
		name       string
		mutate     func(u *User)
		wantFields []string
	}{
		{
			name:   "valid user",
			mutate: func(u *User) {},
		},
		{
			name: "digest without plaintext is valid",
			mutate: func(u *User) {
				u.Password = ""
				u.HashedPassword = "$2a$10$digest"
			},
		},
		{
			name:       "missing username",
			mutate:     func(u *User) { u.Username = "" },
			wantFields: []string{"username"},
		},
		{
			name:       "username too short",
			mutate:     func(u *User) { u.Username = "a" },
			wantFields: []string{"username"},
		},
		{
			name:       "username too long",
			mutate:     func(u *User) { u.Username = strings.Repeat("a", 31) },
			wantFields: []string{"username"},
		},
		{
			name:       "invalid email",
			mutate:     func(u *User) { u.Email = "not-an-email" },
			wantFields: []string{"email"},
		},
		{
			name:       "avatar must be a URL",
			mutate:     func(u *User) { u.Avatar = "avatar" },
			wantFields: []string{"avatar"},
		},
		{
			name:   "empty avatar is allowed",
			mutate: func(u *User) { u.Avatar = "" },
		},
		{
			name:       "about too long",
			mutate:     func(u *User) { u.About = strings.Repeat("x", 201) },
			wantFields: []string{"about"},
		},
		{
			name:       "password too short",
			mutate:     func(u *User) { u.Password = "pw" },
			wantFields: []string{"password"},
		},
		{
			name:       "multibyte password within 72 characters but over 72 bytes",
			mutate:     func(u *User) { u.Password = strings.Repeat("é", 40) },
			wantFields: []string{"password"},
		},
		{
			name:       "password of exactly 72 bytes",
			mutate:     func(u *User) { u.Password = strings.Repeat("é", 36) },
		},
		{
			name:       "no password and no digest",
			mutate:     func(u *User) { u.Password = "" },
			wantFields: []string{"password"},
		},
		{
			name: "several violations at once",
			mutate: func(u *User) {
				u.Username = ""
				u.Email = ""
			},
			wantFields: []string{"username", "email"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := valid()
			tt.mutate(u)
			err := Validate(u)

			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			fields := make([]string, 0, len(vErr.Violations))
			for _, v := range vErr.Violations {
				fields = append(fields, v.Field)
				assert.NotEmpty(t, v.Message)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}
}

func TestUserPublic(t *testing.T) {
	t.Parallel()

	u := NewUser("ann", "a@x.com", "secret1")
	u.HashedPassword = "$2a$10$digest"

	pub := u.Public()

	assert.Empty(t, pub.Password)
	assert.Empty(t, pub.HashedPassword)
	assert.Equal(t, u.ID, pub.ID)
	assert.Equal(t, "secret1", u.Password, "original must not be modified")

	var nilUser *User
	assert.Nil(t, nilUser.Public())
}
