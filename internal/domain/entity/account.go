// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a registered user of the registry. Email is the login identifier
// and the subject of every access token issued for the account.
type Account struct {
	ID           uuid.UUID // Stable identifier assigned at creation.
	Username     string    // Unique, stored sanitized.
	Email        string    // Unique, used as the token subject.
	PasswordHash string    // Opaque hash produced by the password hasher, never the plaintext.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Owns reports whether the account is the owner of the resource identified by ownerID.
func (a *Account) Owns(ownerID uuid.UUID) bool {
	return a != nil && a.ID == ownerID
}
