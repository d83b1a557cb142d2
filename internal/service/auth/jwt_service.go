package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService signs and verifies the access tokens handed out at sign-in.
type JWTService interface {
	// GenerateToken creates a signed access token whose subject is userID.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies the signature and time claims of tokenString
	// and returns its claims. Failures are one of ErrInvalidToken,
	// ErrExpiredToken or ErrTokenNotYetValid.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified content of an access token.
type Claims struct {
	// UserID is the parsed subject of the token.
	UserID uuid.UUID

	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}
