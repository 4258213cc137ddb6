package usecase

import (
	"context"

	"wayfarer/internal/domain/entity"
)

// RegisterInput carries the fields of a new user account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// AuthTokens is the pair of tokens issued on a successful login.
type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UserUsecase defines account registration and login.
type UserUsecase interface {
	// Register creates a new account with a hashed password. Fails with a
	// conflict when the email is already registered.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, email, password string) (*AuthTokens, error)
}
