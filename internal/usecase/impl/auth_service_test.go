package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	mockRepo "madr/internal/mocks/repository"
	mockSvc "madr/internal/mocks/service"
	"madr/internal/usecase"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) (usecase.AuthUsecase, authServiceMocks) {
	t.Helper()

	mocks := authServiceMocks{
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	svc := NewAuthService(AuthServiceParams{
		AccountRepo:  mocks.accountRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "argon-hash",
	}
}

func testToken() *entity.AccessToken {
	return &entity.AccessToken{
		Token:     "header.claims.signature",
		Type:      entity.TokenTypeBearer,
		Subject:   "a@x.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a bearer token", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)
		account := testAccount()

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(account, nil)
		mocks.hasher.EXPECT().Check("secret", "argon-hash").Return(true)
		mocks.hasher.EXPECT().NeedsRehash("argon-hash").Return(false)
		mocks.tokenService.EXPECT().Issue("a@x.com").Return(testToken(), nil)

		token, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)
		assert.Equal(t, "bearer", token.Type)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(testAccount(), nil)
		mocks.hasher.EXPECT().Check("wrong", "argon-hash").Return(false)
		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "b@x.com").Return(nil, repository.ErrAccountNotFound)
		mocks.hasher.EXPECT().Hash(dummyPassword).Return("argon-dummy", nil).Once()
		mocks.hasher.EXPECT().Check("secret", "argon-dummy").Return(false)

		_, wrongPassword := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
		_, unknownEmail := svc.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "secret"})

		assert.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword, unknownEmail)
	})

	t.Run("unknown email still pays the hashing cost", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, repository.ErrAccountNotFound)
		mocks.hasher.EXPECT().Hash(dummyPassword).Return("argon-dummy", nil).Once()
		mocks.hasher.EXPECT().Check(mock.Anything, "argon-dummy").Return(false).Times(2)

		for _, email := range []string{"b@x.com", "c@x.com"} {
			_, err := svc.Login(ctx, &usecase.LoginInput{Email: email, Password: "secret"})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		}
	})

	t.Run("unknown email falls back to a fixed hash", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "b@x.com").Return(nil, repository.ErrAccountNotFound)
		mocks.hasher.EXPECT().Hash(dummyPassword).Return("", errors.New("rng failure"))
		mocks.hasher.EXPECT().Check("secret", fallbackDummyHash).Return(false)

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "b@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)
		errDB := errors.New("connection refused")

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(nil, errDB)

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, errDB)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("legacy hash is upgraded after login", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)
		account := testAccount()
		account.PasswordHash = "$2a$10$legacy"

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(account, nil)
		mocks.hasher.EXPECT().Check("secret", "$2a$10$legacy").Return(true)
		mocks.hasher.EXPECT().NeedsRehash("$2a$10$legacy").Return(true)
		mocks.hasher.EXPECT().Hash("secret").Return("argon-new", nil)
		mocks.accountRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == account.ID && a.PasswordHash == "argon-new"
		})).Return(nil)
		mocks.tokenService.EXPECT().Issue("a@x.com").Return(testToken(), nil)

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		require.NoError(t, err)
	})

	t.Run("failed upgrade does not fail login", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)
		account := testAccount()

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(account, nil)
		mocks.hasher.EXPECT().Check("secret", "argon-hash").Return(true)
		mocks.hasher.EXPECT().NeedsRehash("argon-hash").Return(true)
		mocks.hasher.EXPECT().Hash("secret").Return("argon-new", nil)
		mocks.accountRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(errors.New("db down"))
		mocks.tokenService.EXPECT().Issue("a@x.com").Return(testToken(), nil)

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "argon-hash", account.PasswordHash)
	})

	t.Run("token issue failure", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)

		mocks.accountRepo.EXPECT().FindByEmail(mock.Anything, "a@x.com").Return(testAccount(), nil)
		mocks.hasher.EXPECT().Check("secret", "argon-hash").Return(true)
		mocks.hasher.EXPECT().NeedsRehash("argon-hash").Return(false)
		mocks.tokenService.EXPECT().Issue("a@x.com").Return(nil, errors.New("sign failed"))

		_, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret"})
		assert.ErrorContains(t, err, "sign failed")
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("empty token", func(t *testing.T) {
		svc, _ := createTestAuthService(t)

		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("delegates to token service", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)
		account := testAccount()

		mocks.tokenService.EXPECT().Verify(mock.Anything, "tok").Return(account, nil)

		got, err := svc.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, account, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, mocks := createTestAuthService(t)

		mocks.tokenService.EXPECT().Verify(mock.Anything, "bad").Return(nil, domainerrors.ErrInvalidToken)

		_, err := svc.Authenticate(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	svc, mocks := createTestAuthService(t)
	account := testAccount()
	token := testToken()

	mocks.tokenService.EXPECT().Refresh(account).Return(token, nil)

	got, err := svc.Refresh(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestFallbackDummyHashIsWellFormed(t *testing.T) {
	params, salt, key, err := argon2id.DecodeHash(fallbackDummyHash)
	require.NoError(t, err)
	assert.Equal(t, uint32(65536), params.Memory)
	assert.Len(t, salt, 16)
	assert.Len(t, key, 32)
}
