package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "madr/internal/delivery/context"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/domain/service"
	"madr/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed once per process to give unknown-email logins the
// same hashing cost as wrong-password logins.
const dummyPassword = "madr-unknown-account"

// fallbackDummyHash is a well-formed argon2id hash used if hashing dummyPassword fails.
const fallbackDummyHash = "$argon2id$v=19$m=65536,t=3,p=2$c29tZXNhbHRzb21lc2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// authService implements the AuthUsecase interface.
type authService struct {
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	dummyHash    func() string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		dummyHash: sync.OnceValue(func() string {
			hash, err := params.Hasher.Hash(dummyPassword)
			if err != nil {
				return fallbackDummyHash
			}

			return hash
		}),
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Login verifies email and password and issues an access token. Unknown
// emails and wrong passwords fail with the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AccessToken, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		srv.hasher.Check(input.Password, srv.dummyHash())
		srv.log(ctx).Debug("Login for unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if srv.hasher.NeedsRehash(account.PasswordHash) {
		srv.upgradeHash(ctx, account, input.Password)
	}

	token, err := srv.tokenService.Issue(account.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("Account logged in", slog.Any("accountID", account.ID))

	return token, nil
}

// upgradeHash replaces a legacy or outdated hash after a successful login.
func (srv *authService) upgradeHash(ctx context.Context, account *entity.Account, password string) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Any("accountID", account.ID), slog.Any("error", err))

		return
	}

	previous := account.PasswordHash
	account.PasswordHash = hash
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		account.PasswordHash = previous
		srv.log(ctx).Warn("Failed to store upgraded password hash", slog.Any("accountID", account.ID), slog.Any("error", err))

		return
	}

	srv.log(ctx).Info("Upgraded password hash", slog.Any("accountID", account.ID))
}

func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	if token == "" {
		return nil, domainerrors.ErrInvalidToken
	}

	return srv.tokenService.Verify(ctx, token)
}

func (srv *authService) Refresh(ctx context.Context, account *entity.Account) (*entity.AccessToken, error) {
	token, err := srv.tokenService.Refresh(account)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Access token refreshed", slog.Any("accountID", account.ID))

	return token, nil
}
