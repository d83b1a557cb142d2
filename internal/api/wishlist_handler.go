package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/giftlist-api/internal/api/shared"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/service"
	"github.com/phrazzld/giftlist-api/internal/store"
)

const (
	msgOnlyOwnChanged = "only own wishlists may be changed"
	msgOnlyOwnDeleted = "only own wishlists may be deleted"
)

// WishlistHandler serves the wishlist endpoints. It resolves item IDs to
// wishes and enforces ownership before any mutation.
type WishlistHandler struct {
	wishlists service.WishlistService
	users     service.UserService
	wishes    store.WishStore
	logger    *slog.Logger
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(
	wishlists service.WishlistService,
	users service.UserService,
	wishes store.WishStore,
	logger *slog.Logger,
) *WishlistHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WishlistHandler{
		wishlists: wishlists,
		users:     users,
		wishes:    wishes,
		logger:    logger.With(slog.String("component", "wishlist_handler")),
	}
}

// List handles GET /wishlists.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	wishlists, err := h.wishlists.FindAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wishlists)
}

// Create handles POST /wishlists. The caller becomes the owner.
func (h *WishlistHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req CreateWishlistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	owner, err := h.users.FindOne(r.Context(), userID.String())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	items, ok := h.resolveItems(w, r, req.ItemsID)
	if !ok {
		return
	}

	wishlist, err := h.wishlists.Create(r.Context(), service.CreateWishlistInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}, profileOf(owner), items)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, wishlist)
}

// Get handles GET /wishlists/{id}.
func (h *WishlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	wishlist, err := h.wishlists.FindOne(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wishlist)
}

// Update handles PATCH /wishlists/{id}.
func (h *WishlistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireOwner(w, r, id, "update wishlist", msgOnlyOwnChanged) {
		return
	}

	var req UpdateWishlistRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	var items []domain.Wish
	if len(req.ItemsID) > 0 {
		var ok bool
		if items, ok = h.resolveItems(w, r, req.ItemsID); !ok {
			return
		}
	}

	wishlist, err := h.wishlists.Update(r.Context(), id, service.UpdateWishlistInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}, items)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wishlist)
}

// Delete handles DELETE /wishlists/{id} and returns the removed wishlist.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.requireOwner(w, r, id, "remove wishlist", msgOnlyOwnDeleted) {
		return
	}

	wishlist, err := h.wishlists.RemoveOne(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, wishlist)
}

// requireOwner writes a 403 and returns false unless the caller owns the
// wishlist.
func (h *WishlistHandler) requireOwner(w http.ResponseWriter, r *http.Request, id, op, deniedMsg string) bool {
	userID, ok := callerID(w, r)
	if !ok {
		return false
	}

	owns, err := h.wishlists.CheckOwner(r.Context(), id, userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return false
	}
	if !owns {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("ownership check failed",
			slog.String("wishlist_id", id),
			slog.String("user_id", userID.String()))
		HandleAPIError(w, r, service.NewError(op, service.ErrForbidden, deniedMsg, nil))
		return false
	}
	return true
}

// resolveItems looks the requested wishes up. Unknown IDs are dropped.
func (h *WishlistHandler) resolveItems(w http.ResponseWriter, r *http.Request, raw []string) ([]domain.Wish, bool) {
	if len(raw) == 0 {
		return []domain.Wish{}, true
	}

	items, err := h.wishes.FindManyByID(r.Context(), parseItemIDs(raw))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgUnexpected, err)
		return nil, false
	}
	return items, true
}

// profileOf strips the relations loaded by FindOne so the owner embedded in
// a wishlist response is just the profile.
func profileOf(u *domain.User) *domain.User {
	p := *u
	p.Wishes, p.Offers, p.Wishlists = nil, nil, nil
	return &p
}
