package model

import (
	"time"

	"github.com/google/uuid"
)

// NovelistModel mirrors the 'novelists' table.
type NovelistModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NovelistModel) TableName() string {
	return "novelists"
}

// BookModel mirrors the 'books' table. NovelistID references novelists.id.
type BookModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year       int       `gorm:"not null"`
	Title      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	NovelistID uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
