package adapter

import (
	"github.com/google/uuid"
)

// TokenClaims holds the validated claims of an access token.
type TokenClaims struct {
	AdminID  uuid.UUID
	Username string
}

// TokenService defines JWT access-token operations for the back office.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an admin user.
	GenerateAccessToken(adminID uuid.UUID, username string) (string, error)

	// ValidateAccessToken validates a token and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
