package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "madr/internal/delivery/context"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/domain/service"
	"madr/internal/usecase"
	"madr/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

func (srv *accountService) List(ctx context.Context, page entity.Page) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.List(ctx, page.Normalize())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// Create registers a new account. The password is hashed before the
// transaction starts so the hashing cost is not paid while holding it.
func (srv *accountService) Create(ctx context.Context, input *usecase.AccountInput) (*entity.Account, error) {
	username, email, err := normalizeAccountInput(input)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	account := &entity.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		existing, err := accountRepo.FindByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return errors.Wrap(err, "failed to check account uniqueness")
		}
		if len(existing) > 0 {
			return domainerrors.ErrAccountAlreadyExists
		}

		return accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("accountID", account.ID))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventAccountCreated, account.ID, newAccountPayload(account))

	return account, nil
}

// Update replaces username, email and password of the caller's own account.
// Password comparison and hashing run outside the transaction, which only
// covers the uniqueness check and the write.
func (srv *accountService) Update(ctx context.Context, caller *entity.Account, id uuid.UUID, input *usecase.AccountInput) (*entity.Account, error) {
	if err := service.AuthorizeOwner(caller, id); err != nil {
		srv.log(ctx).Warn("Account update denied", slog.Any("accountID", id))

		return nil, err
	}

	username, email, err := normalizeAccountInput(input)
	if err != nil {
		return nil, err
	}

	current, err := srv.accountRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if current.Username == username && current.Email == email && srv.hasher.Check(input.Password, current.PasswordHash) {
		return nil, domainerrors.ErrAccountUnchanged
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	updated := *current
	updated.Username = username
	updated.Email = email
	updated.PasswordHash = hash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		existing, err := accountRepo.FindByUsernameOrEmail(ctx, username, email)
		if err != nil {
			return errors.Wrap(err, "failed to check account uniqueness")
		}
		for _, other := range existing {
			if other.ID != id {
				return domainerrors.ErrAccountAlreadyExists
			}
		}

		err = accountRepo.Update(ctx, &updated)
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Info("Account updated", slog.Any("accountID", id))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventAccountUpdated, id, newAccountPayload(&updated))

	return &updated, nil
}

func (srv *accountService) Delete(ctx context.Context, caller *entity.Account, id uuid.UUID) error {
	if err := service.AuthorizeOwner(caller, id); err != nil {
		srv.log(ctx).Warn("Account deletion denied", slog.Any("accountID", id))

		return err
	}

	err := srv.accountRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return domainerrors.ErrAccountNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("accountID", id))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventAccountDeleted, id, newAccountPayload(caller))

	return nil
}

func normalizeAccountInput(input *usecase.AccountInput) (username, email string, err error) {
	username = util.SanitizeText(input.Username)
	email = strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return "", "", domainerrors.ErrValidationFailed.WithDetails("username, email and password are required")
	}

	return username, email, nil
}
