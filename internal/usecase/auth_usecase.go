// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"madr/internal/domain/entity"
)

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthUsecase defines the authentication handshake consumed by the delivery layer.
type AuthUsecase interface {
	// Login verifies the credentials and issues an access token.
	Login(ctx context.Context, input *LoginInput) (*entity.AccessToken, error)

	// Authenticate resolves a bearer token to the account it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)

	// Refresh issues a new access token for an authenticated account.
	Refresh(ctx context.Context, account *entity.Account) (*entity.AccessToken, error)
}
