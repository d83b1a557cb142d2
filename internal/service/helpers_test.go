package service_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/giftlist-api/internal/mocks"
	"github.com/phrazzld/giftlist-api/internal/service"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

// fixture wires the services over in-memory stores.
type fixture struct {
	users     *mocks.MockUserStore
	wishlists *mocks.MockWishlistStore
	hasher    *mocks.MockPasswordHasher
	jwt       *mocks.MockJWTService

	userService     *service.UserServiceImpl
	authService     *service.AuthServiceImpl
	wishlistService *service.WishlistServiceImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := mocks.NewMockUserStore()
	wishlists := mocks.NewMockWishlistStore(users)
	users.Wishlists = wishlists
	hasher := &mocks.MockPasswordHasher{}
	jwt := &mocks.MockJWTService{Token: "signed-token"}

	userService := service.NewUserService(users, hasher, testLogger())
	return &fixture{
		users:           users,
		wishlists:       wishlists,
		hasher:          hasher,
		jwt:             jwt,
		userService:     userService,
		authService:     service.NewAuthService(userService, hasher, jwt, testLogger()),
		wishlistService: service.NewWishlistService(wishlists, testLogger()),
	}
}

// requireKind asserts that err is a *service.Error of the given kind and
// returns it.
func requireKind(t *testing.T, err error, kind error) *service.Error {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	var svcErr *service.Error
	require.ErrorAs(t, err, &svcErr)
	return svcErr
}
