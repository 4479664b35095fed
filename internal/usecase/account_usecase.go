package usecase

import (
	"context"

	"madr/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountInput carries the registration and profile update fields.
type AccountInput struct {
	Username string
	Email    string
	Password string
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	List(ctx context.Context, page entity.Page) ([]*entity.Account, error)
	Create(ctx context.Context, input *AccountInput) (*entity.Account, error)

	// Update and Delete only succeed when caller owns the account identified by id.
	Update(ctx context.Context, caller *entity.Account, id uuid.UUID, input *AccountInput) (*entity.Account, error)
	Delete(ctx context.Context, caller *entity.Account, id uuid.UUID) error
}
