package postgres

import (
	"context"

	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/infra/persistence/model"
	"madr/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// novelistRepository implements the repository.NovelistRepository interface using
// the GORM Gen query builder. Name search drops to plain GORM for the escaped LIKE.
type novelistRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewNovelistRepository is the constructor for novelistRepository.
func NewNovelistRepository(db *gorm.DB) repository.NovelistRepository {
	return &novelistRepository{
		db: db,
		q:  query.Use(db),
	}
}

func (repo *novelistRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Novelist, error) {
	n := repo.q.NovelistModel
	novelistM, err := n.WithContext(ctx).Where(n.ID.Eq(id)).First()

	return toFoundNovelist(novelistM, err, "find novelist by id")
}

func (repo *novelistRepository) FindByName(ctx context.Context, name string) (*entity.Novelist, error) {
	n := repo.q.NovelistModel
	novelistM, err := n.WithContext(ctx).Where(n.Name.Eq(name)).First()

	return toFoundNovelist(novelistM, err, "find novelist by name")
}

func toFoundNovelist(novelistM *model.NovelistModel, err error, op string) (*entity.Novelist, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNovelistNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toNovelistDomain(novelistM), nil
}

func (repo *novelistRepository) Search(ctx context.Context, filter repository.NovelistFilter) ([]*entity.Novelist, error) {
	page := filter.Page.Normalize()

	stmt := repo.db.WithContext(ctx).Model(&model.NovelistModel{})
	if filter.Name != "" {
		stmt = stmt.Where(`name LIKE ? ESCAPE '\'`, containsPattern(filter.Name))
	}

	var novelistMs []*model.NovelistModel
	if err := stmt.Order("name").Limit(page.Limit).Offset(page.Offset).Find(&novelistMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "search novelists")
	}

	novelists := make([]*entity.Novelist, 0, len(novelistMs))
	for _, novelistM := range novelistMs {
		novelists = append(novelists, toNovelistDomain(novelistM))
	}

	return novelists, nil
}

func (repo *novelistRepository) Create(ctx context.Context, novelist *entity.Novelist) error {
	if novelist.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate novelist id")
		}
		novelist.ID = id
	}

	novelistM := fromNovelistDomain(novelist)
	if err := repo.q.NovelistModel.WithContext(ctx).Create(novelistM); err != nil {
		return translateNovelistWriteError(err, "create novelist")
	}

	novelist.CreatedAt = novelistM.CreatedAt
	novelist.UpdatedAt = novelistM.UpdatedAt

	return nil
}

func (repo *novelistRepository) Update(ctx context.Context, novelist *entity.Novelist) error {
	now := repo.db.NowFunc()

	n := repo.q.NovelistModel
	info, err := n.WithContext(ctx).
		Where(n.ID.Eq(novelist.ID)).
		UpdateSimple(n.Name.Value(novelist.Name), n.UpdatedAt.Value(now))
	if err != nil {
		return translateNovelistWriteError(err, "update novelist")
	}
	if info.RowsAffected == 0 {
		return repository.ErrNovelistNotFound
	}

	novelist.UpdatedAt = now

	return nil
}

// Delete removes the novelist row only; callers remove the books in the same transaction.
func (repo *novelistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n := repo.q.NovelistModel
	info, err := n.WithContext(ctx).Where(n.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete novelist")
	}
	if info.RowsAffected == 0 {
		return repository.ErrNovelistNotFound
	}

	return nil
}

func translateNovelistWriteError(err error, op string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrNovelistAlreadyExists.WrapMessage(op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// --- Mapper Functions ---

func toNovelistDomain(data *model.NovelistModel) *entity.Novelist {
	if data == nil {
		return nil
	}

	return &entity.Novelist{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromNovelistDomain(data *entity.Novelist) *model.NovelistModel {
	if data == nil {
		return nil
	}

	return &model.NovelistModel{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
