package usecase

import (
	"context"
	"time"
)

// AuthToken is issued on a successful admin login.
type AuthToken struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthUsecase defines the admin authentication use cases
type AuthUsecase interface {
	Login(ctx context.Context, username, password string) (*AuthToken, error)
}
