package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/giftlist-api/internal/api"
	"github.com/phrazzld/giftlist-api/internal/api/middleware"
	"github.com/phrazzld/giftlist-api/internal/domain"
	"github.com/phrazzld/giftlist-api/internal/mocks"
	"github.com/phrazzld/giftlist-api/internal/service"
	"github.com/phrazzld/giftlist-api/internal/service/auth"
	"github.com/stretchr/testify/require"
)

const tokenPrefix = "tok-"

// testServer mounts the real handlers and services over in-memory stores.
type testServer struct {
	t         *testing.T
	handler   http.Handler
	users     *mocks.MockUserStore
	wishlists *mocks.MockWishlistStore
	wishes    *mocks.MockWishStore
}

func newTestServer(t *testing.T, wishes ...domain.Wish) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := mocks.NewMockUserStore()
	wishlists := mocks.NewMockWishlistStore(users)
	users.Wishlists = wishlists
	wishStore := mocks.NewMockWishStore(wishes...)
	hasher := &mocks.MockPasswordHasher{}
	jwtService := &mocks.MockJWTService{
		GenerateTokenFn: func(_ context.Context, userID uuid.UUID) (string, error) {
			return tokenPrefix + userID.String(), nil
		},
		ValidateTokenFn: func(_ context.Context, token string) (*auth.Claims, error) {
			id, err := uuid.Parse(strings.TrimPrefix(token, tokenPrefix))
			if err != nil || !strings.HasPrefix(token, tokenPrefix) {
				return nil, auth.ErrInvalidToken
			}
			return &auth.Claims{UserID: id, Subject: id.String()}, nil
		},
	}

	userService := service.NewUserService(users, hasher, log)
	authService := service.NewAuthService(userService, hasher, jwtService, log)
	wishlistService := service.NewWishlistService(wishlists, log)

	r := chi.NewRouter()
	r.Use(middleware.NewTraceMiddleware(log))
	api.RegisterRoutes(r, api.Handlers{
		Auth:      api.NewAuthHandler(userService, authService, log),
		Users:     api.NewUserHandler(userService, log),
		Wishlists: api.NewWishlistHandler(wishlistService, userService, wishStore, log),
	}, middleware.NewAuthMiddleware(jwtService).Authenticate)

	return &testServer{t: t, handler: r, users: users, wishlists: wishlists, wishes: wishStore}
}

// do sends a request; body may be nil, a string of raw JSON, or a value to
// encode.
func (s *testServer) do(method, path, token string, body any) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// signup registers a user and returns it with a token for it.
func (s *testServer) signup(username, email, password string) (*domain.User, string) {
	s.t.Helper()

	rec := s.do(http.MethodPost, "/signup", "", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var user domain.User
	decode(s.t, rec, &user)
	return &user, tokenPrefix + user.ID.String()
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

type errorBody struct {
	Error      string             `json:"error"`
	Violations []domain.Violation `json:"violations"`
	TraceID    string             `json:"trace_id"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	decode(t, rec, &body)
	return body
}

func strPtr(s string) *string { return &s }
