package service

import (
	"time"
)

// AdminClaims is what a validated admin access token carries.
type AdminClaims struct {
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for the subject.
	GenerateAccessToken(subject string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks signature, expiry, and token type.
	ValidateToken(tokenString string) (*AdminClaims, error)
}
