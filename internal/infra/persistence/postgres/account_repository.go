package postgres

import (
	"context"
	"time"

	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/infra/persistence/model"
	"madr/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using the GORM Gen query builder.
type accountRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		q:   query.Use(db),
		now: db.NowFunc,
	}
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	a := repo.q.AccountModel
	accountM, err := a.WithContext(ctx).Where(a.ID.Eq(id)).First()

	return toFoundAccount(accountM, err, "find account by id")
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	a := repo.q.AccountModel
	accountM, err := a.WithContext(ctx).Where(a.Email.Eq(email)).First()

	return toFoundAccount(accountM, err, "find account by email")
}

func toFoundAccount(accountM *model.AccountModel, err error, op string) (*entity.Account, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toAccountDomain(accountM), nil
}

func (repo *accountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) ([]*entity.Account, error) {
	a := repo.q.AccountModel
	accountMs, err := a.WithContext(ctx).
		Where(a.Username.Eq(username)).
		Or(a.Email.Eq(email)).
		Order(a.Username).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find accounts by username or email")
	}

	return toAccountDomains(accountMs), nil
}

func (repo *accountRepository) List(ctx context.Context, page entity.Page) ([]*entity.Account, error) {
	page = page.Normalize()

	a := repo.q.AccountModel
	accountMs, err := a.WithContext(ctx).
		Order(a.Username).
		Limit(page.Limit).
		Offset(page.Offset).
		Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list accounts")
	}

	return toAccountDomains(accountMs), nil
}

// Create persists a new account, assigning a UUIDv7 when the entity has no id yet.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if account.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate account id")
		}
		account.ID = id
	}

	accountM := fromAccountDomain(account)
	if err := repo.q.AccountModel.WithContext(ctx).Create(accountM); err != nil {
		return translateAccountWriteError(err, "create account")
	}

	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	now := repo.now()

	a := repo.q.AccountModel
	info, err := a.WithContext(ctx).
		Where(a.ID.Eq(account.ID)).
		UpdateSimple(
			a.Username.Value(account.Username),
			a.Email.Value(account.Email),
			a.PasswordHash.Value(account.PasswordHash),
			a.UpdatedAt.Value(now),
		)
	if err != nil {
		return translateAccountWriteError(err, "update account")
	}
	if info.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = now

	return nil
}

func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	a := repo.q.AccountModel
	info, err := a.WithContext(ctx).Where(a.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete account")
	}
	if info.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func translateAccountWriteError(err error, op string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrAccountAlreadyExists.WrapMessage(op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// --- Mapper Functions ---

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toAccountDomains(data []*model.AccountModel) []*entity.Account {
	accounts := make([]*entity.Account, 0, len(data))
	for _, accountM := range data {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
