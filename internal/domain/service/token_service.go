package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the subset of the auth service's access-token claims the
// gateway cares about.
type Claims struct {
	UserID    uuid.UUID // Subject claim.
	Email     string    // Email claim, may lag behind the profile after an address change.
	Role      string    // Raw role claim; the stored profile row stays authoritative.
	ExpiresAt time.Time // Expiry claim.
}

// TokenService parses and validates access tokens issued by the hosted
// auth service. The gateway never issues tokens of its own; it verifies
// with the shared signing secret.
type TokenService interface {
	// ParseAccessToken validates the token's signature and expiry and
	// returns its claims.
	ParseAccessToken(tokenString string) (*Claims, error)
}
