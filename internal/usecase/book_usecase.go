package usecase

import (
	"context"

	"madr/internal/domain/entity"

	"github.com/google/uuid"
)

type BookInput struct {
	Year       int
	Title      string
	NovelistID uuid.UUID
}

// BookQuery filters the book listing; zero fields are ignored.
type BookQuery struct {
	Title string
	Year  *int
	Page  entity.Page
}

// BookUsecase defines the catalog operations on books.
type BookUsecase interface {
	Create(ctx context.Context, input *BookInput) (*entity.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Book, error)
	Search(ctx context.Context, query *BookQuery) ([]*entity.Book, error)

	// FullTextSearch queries the catalog index and falls back to a title filter
	// when the index is disabled.
	FullTextSearch(ctx context.Context, text string, page entity.Page) ([]*entity.Book, error)

	Update(ctx context.Context, id uuid.UUID, input *BookInput) (*entity.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
