package usecase

import (
	"context"
	"time"
)

// LoginOutput is the issued admin access token
type LoginOutput struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AdminUsecase defines the back-office authentication operation
type AdminUsecase interface {
	Login(ctx context.Context, username, password string) (*LoginOutput, error)
}
