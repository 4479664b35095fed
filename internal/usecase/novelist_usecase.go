package usecase

import (
	"context"

	"madr/internal/domain/entity"

	"github.com/google/uuid"
)

type NovelistInput struct {
	Name string
}

// NovelistUsecase defines the catalog operations on novelists.
type NovelistUsecase interface {
	Create(ctx context.Context, input *NovelistInput) (*entity.Novelist, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Novelist, error)
	Search(ctx context.Context, name string, page entity.Page) ([]*entity.Novelist, error)
	Update(ctx context.Context, id uuid.UUID, input *NovelistInput) (*entity.Novelist, error)

	// Delete removes the novelist together with every book they wrote.
	Delete(ctx context.Context, id uuid.UUID) error
}
