package repository

import (
	"context"
	"errors"

	"madr/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNovelistNotFound is returned when no novelist matches the lookup.
var ErrNovelistNotFound = errors.New("novelist not found")

// NovelistFilter narrows a novelist listing. An empty Name matches every novelist.
type NovelistFilter struct {
	Name string
	Page entity.Page
}

// NovelistRepository defines the standard operations for novelist persistence.
type NovelistRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Novelist, error)

	// FindByName retrieves the novelist with exactly this (sanitized) name.
	FindByName(ctx context.Context, name string) (*entity.Novelist, error)

	// Search returns novelists whose name contains filter.Name, ordered by name.
	Search(ctx context.Context, filter NovelistFilter) ([]*entity.Novelist, error)

	Create(ctx context.Context, novelist *entity.Novelist) error
	Update(ctx context.Context, novelist *entity.Novelist) error
	Delete(ctx context.Context, id uuid.UUID) error
}
