package entity

import (
	"time"

	"github.com/google/uuid"
)

// Novelist is an author in the catalog. Deleting a novelist removes their books.
type Novelist struct {
	ID        uuid.UUID
	Name      string // Unique, stored sanitized.
	CreatedAt time.Time
	UpdatedAt time.Time
}
