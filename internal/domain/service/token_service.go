package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an admin access token.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for subject with roles.
	GenerateAccessToken(subject string, roles []string) (token string, expiresAt time.Time, err error)

	// ValidateToken checks the validity of an access token and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
