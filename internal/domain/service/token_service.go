package service

import (
	"context"

	"madr/internal/domain/entity"
)

// AccountFinder is the read-only account lookup the token service resolves subjects against.
type AccountFinder interface {
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)
}

// TokenService issues and verifies stateless bearer tokens whose subject is an account email.
type TokenService interface {
	// Issue signs a new token for subject that expires after the configured TTL.
	Issue(subject string) (*entity.AccessToken, error)

	// Verify checks signature, expiry and subject and resolves the subject to an account.
	// Every rejection is reported as the same invalid-token error; store failures are not.
	Verify(ctx context.Context, token string) (*entity.Account, error)

	// Refresh issues a fresh token for an already verified account. Earlier tokens stay valid until they expire.
	Refresh(account *entity.Account) (*entity.AccessToken, error)
}
