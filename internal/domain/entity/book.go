package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry written by exactly one novelist.
type Book struct {
	ID         uuid.UUID
	Year       int
	Title      string // Unique, stored sanitized.
	NovelistID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
