package repository

import (
	"context"
	"errors"

	"madr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when no book matches the lookup.
var ErrBookNotFound = errors.New("book not found")

// BookFilter narrows a book listing. Title is a substring match, Year an exact
// match; set filters are combined with AND and unset ones are ignored.
type BookFilter struct {
	Title string
	Year  *int
	Page  entity.Page
}

// BookRepository defines the standard operations for book persistence.
type BookRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// FindByTitle retrieves the book with exactly this (sanitized) title.
	FindByTitle(ctx context.Context, title string) (*entity.Book, error)

	// FindByIDs returns the books with the given ids ordered by title. Unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Book, error)

	// Search returns books matching the filter, ordered by title.
	Search(ctx context.Context, filter BookFilter) ([]*entity.Book, error)

	// ListIDsByNovelist returns the ids of every book written by the novelist.
	ListIDsByNovelist(ctx context.Context, novelistID uuid.UUID) ([]uuid.UUID, error)

	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByNovelist removes every book written by the novelist and returns how many were removed.
	DeleteByNovelist(ctx context.Context, novelistID uuid.UUID) (int64, error)
}
