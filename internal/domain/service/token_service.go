package service

import (
	"github.com/google/uuid"
)

// Claims is the subset of token claims the API cares about.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
}

// TokenService verifies bearer tokens issued by the main app backend. This
// service never mints tokens; issuance lives with the auth backend.
type TokenService interface {
	// ValidateToken checks the validity of an access token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
