package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/service/auth"
)

// msgBadCredentials is shared by every credential failure so responses do
// not reveal whether an account exists.
const msgBadCredentials = "invalid username or password"

// AuthService verifies credentials and issues access tokens.
type AuthService interface {
	// Authenticate issues an access token for an already verified user.
	Authenticate(ctx context.Context, user *domain.User) (string, error)

	// ValidateCredentials returns the user when password matches the
	// stored digest of username, and ErrUnauthorized otherwise.
	ValidateCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// AuthServiceImpl implements the AuthService interface
type AuthServiceImpl struct {
	users      UserService
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	logger     *slog.Logger
}

var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new AuthService
func NewAuthService(
	users UserService,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:      users,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_service")),
	}
}

// Authenticate implements AuthService.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, user *domain.User) (string, error) {
	const op = "authenticate"
	if user == nil {
		return "", NewError(op, ErrUnauthorized, msgBadCredentials, nil)
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to generate access token",
			"error", err,
			"user_id", user.ID)
		return "", fatalError(op, err)
	}
	return token, nil
}

// ValidateCredentials implements AuthService. A failed lookup of any kind
// and a password mismatch produce the same error.
func (s *AuthServiceImpl) ValidateCredentials(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	const op = "validate credentials"
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.FindByUsername(ctx, username, true)
	if err != nil {
		log.Debug("credential lookup failed", "username", username, "error", err)
		return nil, NewError(op, ErrUnauthorized, msgBadCredentials, nil)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Error("password comparison failed", "error", err, "user_id", user.ID)
			return nil, fatalError(op, err)
		}
		log.Debug("password mismatch", "user_id", user.ID)
		return nil, NewError(op, ErrUnauthorized, msgBadCredentials, nil)
	}

	// The digest was read only for the comparison above.
	return user.Public(), nil
}
