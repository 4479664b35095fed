package service

import (
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"

	"github.com/google/uuid"
)

// AuthorizeOwner permits an operation only when the authenticated account owns the target.
func AuthorizeOwner(account *entity.Account, ownerID uuid.UUID) error {
	if !account.Owns(ownerID) {
		return domainerrors.ErrForbidden
	}

	return nil
}
