package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/store"
)

const msgNoSuchWishlist = "no such wishlist"

var wishlistLookupMessages = errorMessages{
	InvalidID: msgNoSuchWishlist,
	NotFound:  msgNoSuchWishlist,
}

// CreateWishlistInput carries the fields of a new wishlist.
type CreateWishlistInput struct {
	Name        string
	Description *string
	Image       string
}

// UpdateWishlistInput carries a partial wishlist update. A nil field keeps
// the stored value.
type UpdateWishlistInput struct {
	Name        *string
	Description *string
	Image       *string
}

// WishlistService manages wishlists. Items are always passed in already
// resolved; the service never looks wishes up itself.
type WishlistService interface {
	// Create validates and persists a wishlist owned by owner.
	Create(ctx context.Context, input CreateWishlistInput, owner *domain.User, items []domain.Wish) (*domain.Wishlist, error)

	// FindAll returns every wishlist with owner and items.
	FindAll(ctx context.Context) ([]*domain.Wishlist, error)

	// FindOne returns one wishlist with owner and items.
	FindOne(ctx context.Context, id string) (*domain.Wishlist, error)

	// CheckOwner reports whether userID owns the wishlist. Callers must get
	// true before calling Update or RemoveOne on behalf of userID.
	CheckOwner(ctx context.Context, wishlistID string, userID uuid.UUID) (bool, error)

	// Update merges input into the wishlist. Items are replaced only when
	// items is non-empty.
	Update(ctx context.Context, id string, input UpdateWishlistInput, items []domain.Wish) (*domain.Wishlist, error)

	// RemoveOne deletes the wishlist and returns it as it was.
	RemoveOne(ctx context.Context, id string) (*domain.Wishlist, error)
}

// WishlistServiceImpl implements the WishlistService interface
type WishlistServiceImpl struct {
	wishlistStore store.WishlistStore
	logger        *slog.Logger
}

var _ WishlistService = (*WishlistServiceImpl)(nil)

// NewWishlistService creates a new WishlistService
func NewWishlistService(wishlistStore store.WishlistStore, logger *slog.Logger) *WishlistServiceImpl {
	return &WishlistServiceImpl{
		wishlistStore: wishlistStore,
		logger:        logger.With(slog.String("component", "wishlist_service")),
	}
}

// Create implements WishlistService.
func (s *WishlistServiceImpl) Create(
	ctx context.Context,
	input CreateWishlistInput,
	owner *domain.User,
	items []domain.Wish,
) (*domain.Wishlist, error) {
	const op = "create wishlist"
	log := logger.FromContextOrDefault(ctx, s.logger)

	var description string
	if input.Description != nil {
		description = *input.Description
	}
	wishlist := domain.NewWishlist(input.Name, description, input.Image, owner.Public(), items)

	if err := domain.Validate(wishlist); err != nil {
		log.Debug("wishlist candidate failed validation", "error", err)
		return nil, validationError(op, err)
	}

	if err := s.wishlistStore.Create(ctx, wishlist); err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, errorMessages{})
	}

	log.Info("wishlist created",
		"wishlist_id", wishlist.ID,
		"owner_id", wishlist.OwnerID,
		"item_count", len(wishlist.Items))
	return wishlist, nil
}

// FindAll implements WishlistService.
func (s *WishlistServiceImpl) FindAll(ctx context.Context) ([]*domain.Wishlist, error) {
	wishlists, err := s.wishlistStore.List(ctx)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, "list wishlists", err, errorMessages{})
	}
	for _, w := range wishlists {
		w.Owner = w.Owner.Public()
	}
	return wishlists, nil
}

// FindOne implements WishlistService.
func (s *WishlistServiceImpl) FindOne(ctx context.Context, id string) (*domain.Wishlist, error) {
	wishlist, err := s.wishlistStore.GetByID(ctx, id)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, "find wishlist", err, wishlistLookupMessages)
	}
	wishlist.Owner = wishlist.Owner.Public()
	return wishlist, nil
}

// CheckOwner implements WishlistService. A well-formed id that matches no
// wishlist yields false.
func (s *WishlistServiceImpl) CheckOwner(ctx context.Context, wishlistID string, userID uuid.UUID) (bool, error) {
	ownerID, err := s.wishlistStore.GetOwnerID(ctx, wishlistID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return false, nil
		}
		return false, classifyStoreError(ctx, s.logger, "check wishlist owner", err, wishlistLookupMessages)
	}
	return ownerID == userID, nil
}

// Update implements WishlistService.
func (s *WishlistServiceImpl) Update(
	ctx context.Context,
	id string,
	input UpdateWishlistInput,
	items []domain.Wish,
) (*domain.Wishlist, error) {
	const op = "update wishlist"
	log := logger.FromContextOrDefault(ctx, s.logger)

	wishlist, err := s.wishlistStore.GetByID(ctx, id)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, wishlistLookupMessages)
	}

	if input.Name != nil {
		wishlist.Name = *input.Name
	}
	if input.Description != nil {
		wishlist.Description = *input.Description
	}
	if input.Image != nil {
		wishlist.Image = *input.Image
	}
	// An empty list cannot clear the items; it means "keep".
	if len(items) > 0 {
		wishlist.Items = items
	}

	if err := domain.Validate(wishlist); err != nil {
		log.Debug("merged wishlist failed validation", "wishlist_id", wishlist.ID, "error", err)
		return nil, validationError(op, err)
	}

	wishlist.UpdatedAt = time.Now().UTC()
	if err := s.wishlistStore.Update(ctx, wishlist); err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, wishlistLookupMessages)
	}

	log.Info("wishlist updated",
		"wishlist_id", wishlist.ID,
		"items_replaced", len(items) > 0)
	wishlist.Owner = wishlist.Owner.Public()
	return wishlist, nil
}

// RemoveOne implements WishlistService. It performs no authorization.
func (s *WishlistServiceImpl) RemoveOne(ctx context.Context, id string) (*domain.Wishlist, error) {
	const op = "remove wishlist"

	wishlist, err := s.wishlistStore.GetByID(ctx, id)
	if err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, wishlistLookupMessages)
	}

	if err := s.wishlistStore.Delete(ctx, id); err != nil {
		return nil, classifyStoreError(ctx, s.logger, op, err, wishlistLookupMessages)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("wishlist removed", "wishlist_id", wishlist.ID)
	wishlist.Owner = wishlist.Owner.Public()
	return wishlist, nil
}
