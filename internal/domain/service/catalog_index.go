package service

import (
	"context"
	"errors"

	"madr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSearchUnavailable is returned by a catalog index that cannot serve queries,
// letting callers fall back to the relational filter.
var ErrSearchUnavailable = errors.New("catalog search unavailable")

// CatalogIndex keeps a full-text index of book titles.
type CatalogIndex interface {
	IndexBook(ctx context.Context, book *entity.Book) error
	RemoveBook(ctx context.Context, id uuid.UUID) error

	// SearchBooks returns ids of books whose title matches query, best match first.
	SearchBooks(ctx context.Context, query string, page entity.Page) ([]uuid.UUID, error)
}
