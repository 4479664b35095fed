package impl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/domain/service"
	mockRepo "madr/internal/mocks/repository"
	mockSvc "madr/internal/mocks/service"
	"madr/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	publisher   *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) (usecase.AccountUsecase, accountServiceMocks) {
	t.Helper()

	mocks := accountServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		hasher:      mockSvc.NewMockPasswordHasher(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	mocks.factory.EXPECT().NewAccountRepository().Return(mocks.accountRepo).Maybe()

	svc := NewAccountService(AccountServiceParams{
		TxManager:   mocks.txManager,
		AccountRepo: mocks.accountRepo,
		Hasher:      mocks.hasher,
		Publisher:   mocks.publisher,
		Logger:      newDiscardLogger(),
	})

	return svc, mocks
}

func expectEvent(publisher *mockSvc.MockEventPublisher, eventType service.EventType, aggregateID *uuid.UUID) {
	publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool {
		if e.Type != eventType {
			return false
		}

		return aggregateID == nil || e.AggregateID == aggregateID.String()
	})).Return(nil)
}

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitizes username and stores the hash", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)

		mocks.hasher.EXPECT().Hash("secret").Return("argon-hash", nil)
		runInTx(mocks.txManager, mocks.factory)
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice smith", "a@x.com").Return(nil, nil)
		mocks.accountRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.Username == "alice smith" && a.Email == "a@x.com" && a.PasswordHash == "argon-hash"
		})).RunAndReturn(func(_ context.Context, a *entity.Account) error {
			a.ID = uuid.New()

			return nil
		})
		mocks.publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventAccountCreated && !strings.Contains(string(e.Payload), "argon-hash")
		})).Return(nil)

		account, err := svc.Create(ctx, &usecase.AccountInput{Username: "  Alice   SMITH ", Email: " a@x.com ", Password: "secret"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, account.ID)
		assert.Equal(t, "alice smith", account.Username)
	})

	t.Run("conflict on username or email", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)

		mocks.hasher.EXPECT().Hash("secret").Return("argon-hash", nil)
		runInTx(mocks.txManager, mocks.factory)
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "a@x.com").
			Return([]*entity.Account{testAccount()}, nil)

		_, err := svc.Create(ctx, &usecase.AccountInput{Username: "alice", Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	})

	t.Run("blank fields are rejected", func(t *testing.T) {
		svc, _ := createTestAccountService(t)

		_, err := svc.Create(ctx, &usecase.AccountInput{Username: "   ", Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("hash failure", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)

		mocks.hasher.EXPECT().Hash("secret").Return("", errors.New("rng failure"))

		_, err := svc.Create(ctx, &usecase.AccountInput{Username: "alice", Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)

		mocks.hasher.EXPECT().Hash("secret").Return("argon-hash", nil)
		runInTx(mocks.txManager, mocks.factory)
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "a@x.com").Return(nil, nil)
		mocks.accountRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		mocks.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := svc.Create(ctx, &usecase.AccountInput{Username: "alice", Email: "a@x.com", Password: "secret"})
		assert.NoError(t, err)
	})
}

func TestAccountService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("another account is forbidden", func(t *testing.T) {
		svc, _ := createTestAccountService(t)
		caller := testAccount()

		_, err := svc.Update(ctx, caller, uuid.New(), &usecase.AccountInput{Username: "x", Email: "x@x.com", Password: "p"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("own account is updated", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()
		current := *caller

		mocks.accountRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(&current, nil)
		mocks.hasher.EXPECT().Hash("new-secret").Return("argon-new", nil)
		runInTx(mocks.txManager, mocks.factory)
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice2", "a@x.com").
			Return([]*entity.Account{&current}, nil)
		mocks.accountRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == caller.ID && a.Username == "alice2" && a.PasswordHash == "argon-new"
		})).Return(nil)
		expectEvent(mocks.publisher, service.EventAccountUpdated, &caller.ID)

		updated, err := svc.Update(ctx, caller, caller.ID, &usecase.AccountInput{Username: "Alice2", Email: "a@x.com", Password: "new-secret"})
		require.NoError(t, err)
		assert.Equal(t, "alice2", updated.Username)
	})

	t.Run("unchanged data is rejected before any transaction", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()

		mocks.accountRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(caller, nil)
		mocks.hasher.EXPECT().Check("secret", "argon-hash").Return(true)

		_, err := svc.Update(ctx, caller, caller.ID, &usecase.AccountInput{Username: "alice", Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountUnchanged)
		mocks.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("password hashing never runs inside the transaction", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()
		inTx := false

		mocks.accountRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(caller, nil)
		mocks.hasher.EXPECT().Check("new-secret", "argon-hash").RunAndReturn(func(string, string) bool {
			assert.False(t, inTx, "Check called inside the transaction")

			return false
		})
		mocks.hasher.EXPECT().Hash("new-secret").RunAndReturn(func(string) (string, error) {
			assert.False(t, inTx, "Hash called inside the transaction")

			return "argon-new", nil
		})
		mocks.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				inTx = true
				defer func() { inTx = false }()

				return fn(mocks.factory)
			})
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "a@x.com").
			Return([]*entity.Account{caller}, nil)
		mocks.accountRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
		expectEvent(mocks.publisher, service.EventAccountUpdated, &caller.ID)

		_, err := svc.Update(ctx, caller, caller.ID, &usecase.AccountInput{Username: "alice", Email: "a@x.com", Password: "new-secret"})
		require.NoError(t, err)
	})

	t.Run("email taken by another account", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()
		other := &entity.Account{ID: uuid.New(), Username: "bob", Email: "b@x.com"}

		mocks.accountRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(caller, nil)
		mocks.hasher.EXPECT().Hash("secret").Return("argon-new", nil)
		runInTx(mocks.txManager, mocks.factory)
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "alice", "b@x.com").
			Return([]*entity.Account{other}, nil)

		_, err := svc.Update(ctx, caller, caller.ID, &usecase.AccountInput{Username: "alice", Email: "b@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
	})

	t.Run("account vanished before the read", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()

		mocks.accountRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(nil, repository.ErrAccountNotFound)

		_, err := svc.Update(ctx, caller, caller.ID, &usecase.AccountInput{Username: "alice", Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("account vanished before the write", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()

		mocks.accountRepo.EXPECT().FindByID(mock.Anything, caller.ID).Return(caller, nil)
		mocks.hasher.EXPECT().Hash("secret").Return("argon-new", nil)
		runInTx(mocks.txManager, mocks.factory)
		mocks.accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "bob", "a@x.com").Return(nil, nil)
		mocks.accountRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(repository.ErrAccountNotFound)

		_, err := svc.Update(ctx, caller, caller.ID, &usecase.AccountInput{Username: "bob", Email: "a@x.com", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("account A cannot delete account B", func(t *testing.T) {
		svc, _ := createTestAccountService(t)
		accountA := testAccount()
		accountB := &entity.Account{ID: uuid.New()}

		err := svc.Delete(ctx, accountA, accountB.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("own account is deleted", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()

		mocks.accountRepo.EXPECT().Delete(mock.Anything, caller.ID).Return(nil)
		expectEvent(mocks.publisher, service.EventAccountDeleted, &caller.ID)

		require.NoError(t, svc.Delete(ctx, caller, caller.ID))
	})

	t.Run("already deleted", func(t *testing.T) {
		svc, mocks := createTestAccountService(t)
		caller := testAccount()

		mocks.accountRepo.EXPECT().Delete(mock.Anything, caller.ID).Return(repository.ErrAccountNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, caller, caller.ID), domainerrors.ErrAccountNotFound)
	})
}

func TestAccountService_List(t *testing.T) {
	svc, mocks := createTestAccountService(t)
	accounts := []*entity.Account{testAccount()}

	mocks.accountRepo.EXPECT().List(mock.Anything, entity.Page{Limit: entity.DefaultPageLimit}).Return(accounts, nil)

	got, err := svc.List(context.Background(), entity.Page{})
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}
