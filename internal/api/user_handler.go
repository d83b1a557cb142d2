package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/giftlist-api/internal/api/shared"
	"github.com/phrazzld/giftlist-api/internal/service"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	users  service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:  users,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// Me handles GET /users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	user, err := h.users.FindOne(r.Context(), userID.String())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.UpdateByID(r.Context(), userID.String(), service.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		About:    req.About,
		Avatar:   req.Avatar,
		Password: req.Password,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// ByUsername handles GET /users/{username}.
func (h *UserHandler) ByUsername(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByUsername(r.Context(), chi.URLParam(r, "username"), false)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// Find handles POST /users/find.
func (h *UserHandler) Find(w http.ResponseWriter, r *http.Request) {
	var req FindUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.FindUser(r.Context(), req.Query)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, user)
}
