package mocks

import (
	"strings"

	"github.com/phrazzld/giftlist-api/internal/service/auth"
)

const fakeDigestPrefix = "digest:"

// MockPasswordHasher implements auth.PasswordHasher with a reversible fake
// digest so tests stay fast. HashErr and CompareErr force failures.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	HashErr    error
	CompareErr error

	HashCallCount    int
	CompareCallCount int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCallCount++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return fakeDigestPrefix + password, nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.CompareErr != nil {
		return m.CompareErr
	}
	if !strings.HasPrefix(hashedPassword, fakeDigestPrefix) ||
		strings.TrimPrefix(hashedPassword, fakeDigestPrefix) != password {
		return auth.ErrPasswordMismatch
	}
	return nil
}
