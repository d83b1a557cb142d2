package auth

import "time"

// newTestJWTService builds an HMAC service with a fixed clock.
func newTestJWTService(secret string, lifetime time.Duration, now func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      now,
		clockSkew:     2 * time.Minute,
	}
}
