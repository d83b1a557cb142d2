package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/giftlist-api/internal/api/shared"
	"github.com/phrazzld/giftlist-api/internal/platform/logger"
	"github.com/phrazzld/giftlist-api/internal/service"
)

// AuthHandler handles registration and sign-in.
type AuthHandler struct {
	users  service.UserService
	auth   service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(users service.UserService, auth service.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:  users,
		auth:   auth,
		logger: logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.Create(r.Context(), service.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		About:    req.About,
		Avatar:   req.Avatar,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user signed up",
		slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Signin handles POST /signin.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.auth.ValidateCredentials(r.Context(), req.Username, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.auth.Authenticate(r.Context(), user)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{AccessToken: token})
}
