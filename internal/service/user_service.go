package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/service/auth"
	"github.com/phrazzld/giftlist-api/internal/store"
)

// Caller-facing messages of the user operations.
const (
	msgUserConflict       = "user with this email or username already exists"
	msgNoSuchUser         = "no such user"
	msgNoUserWithUsername = "no user with this username"
	msgNoUserWithEmail    = "no user with this email"
)

// CreateUserInput carries the fields of a registration. Nil optional fields
// fall back to the profile defaults.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	About    *string
	Avatar   *string
}

// UpdateUserInput carries a partial user update. A nil field keeps the
// stored value; a non-nil field replaces it, including with "".
type UpdateUserInput struct {
	Username *string
	Email    *string
	About    *string
	Avatar   *string
	Password *string
}

// UserService provides user registration, profile updates and lookups.
type UserService interface {
	// Create validates and registers a new user.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// UpdateByID merges input into the stored user and saves the result.
	UpdateByID(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)

	// FindByUsername looks a user up by exact username. The digest is
	// included only when includeDigest is true.
	FindByUsername(ctx context.Context, username string, includeDigest bool) (*domain.User, error)

	// FindOne returns a user with its wishes, offers and wishlists.
	FindOne(ctx context.Context, id string) (*domain.User, error)

	// FindUser returns the public profile of the user whose email or
	// username equals query.
	FindUser(ctx context.Context, query string) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService
func NewUserService(userStore store.UserStore, hasher auth.PasswordHasher, logger *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// Create builds a candidate from input, validates it, replaces the
// plaintext password with its digest and persists the user.
func (s *UserServiceImpl) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	const op = "create user"
	log := logger.FromContextOrDefault(ctx, s.logger)

	user := domain.NewUser(input.Username, input.Email, input.Password)
	if input.About != nil {
		user.About = *input.About
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := domain.Validate(user); err != nil {
		log.Debug("user candidate failed validation", "username", input.Username, "error", err)
		return nil, validationError(op, err)
	}

	if err := s.digestPassword(user); err != nil {
		log.Error("failed to hash password", "error", err)
		return nil, fatalError(op, err)
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, errorMessages{Conflict: msgUserConflict})
	}

	log.Info("user created", "user_id", user.ID, "username", user.Username)
	return user.Public(), nil
}

// UpdateByID reads the stored user with its digest, merges the present
// fields of input, validates the merged candidate and saves it.
func (s *UserServiceImpl) UpdateByID(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	const op = "update user"
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.userStore.GetByID(ctx, id, true)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, errorMessages{
			InvalidID:    msgNoSuchUser,
			NotFound:     msgNoSuchUser,
			NotFoundKind: ErrInvalidInput,
		})
	}

	if input.Username != nil {
		user.Username = *input.Username
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.About != nil {
		user.About = *input.About
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if input.Password != nil {
		user.Password = *input.Password
	}

	if err := domain.Validate(user); err != nil {
		log.Debug("merged user failed validation", "user_id", user.ID, "error", err)
		return nil, validationError(op, err)
	}

	if input.Password != nil {
		if err := s.digestPassword(user); err != nil {
			log.Error("failed to hash password", "error", err, "user_id", user.ID)
			return nil, fatalError(op, err)
		}
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userStore.Update(ctx, user); err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, errorMessages{
			Conflict:     msgUserConflict,
			InvalidID:    msgNoSuchUser,
			NotFound:     msgNoSuchUser,
			NotFoundKind: ErrInvalidInput,
		})
	}

	log.Info("user updated", "user_id", user.ID)
	return user.Public(), nil
}

// FindByUsername implements UserService.
func (s *UserServiceImpl) FindByUsername(
	ctx context.Context,
	username string,
	includeDigest bool,
) (*domain.User, error) {
	user, err := s.userStore.GetByUsername(ctx, username, includeDigest)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, "find user by username", err, errorMessages{
			NotFound:     msgNoUserWithUsername,
			NotFoundKind: ErrInvalidInput,
		})
	}
	// The by-username projection never carries the email, so a profile
	// lookup cannot reveal another user's address.
	user.Email = ""
	if !includeDigest {
		return user.Public(), nil
	}
	return user, nil
}

// FindOne implements UserService.
func (s *UserServiceImpl) FindOne(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userStore.GetWithRelations(ctx, id)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, "find user", err, errorMessages{
			InvalidID: msgNoSuchUser,
			NotFound:  msgNoSuchUser,
		})
	}
	return user.Public(), nil
}

// FindUser implements UserService.
func (s *UserServiceImpl) FindUser(ctx context.Context, query string) (*domain.User, error) {
	user, err := s.userStore.GetByEmailOrUsername(ctx, query)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, "find user by email or username", err, errorMessages{
			NotFound:     msgNoUserWithEmail,
			NotFoundKind: ErrInvalidInput,
		})
	}
	return user.Public(), nil
}

// digestPassword replaces the plaintext password of user with its digest.
func (s *UserServiceImpl) digestPassword(user *domain.User) error {
	digest, err := s.hasher.Hash(user.Password)
	if err != nil {
		return err
	}
	user.HashedPassword = digest
	user.Password = ""
	return nil
}
