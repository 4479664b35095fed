package postgres

import (
	"context"
	"database/sql/driver"

	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/infra/persistence/model"
	"madr/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface using the
// GORM Gen query builder, with plain GORM for the filtered search.
type bookRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
		q:  query.Use(db),
	}
}

func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	b := repo.q.BookModel
	bookM, err := b.WithContext(ctx).Where(b.ID.Eq(id)).First()

	return toFoundBook(bookM, err, "find book by id")
}

func (repo *bookRepository) FindByTitle(ctx context.Context, title string) (*entity.Book, error) {
	b := repo.q.BookModel
	bookM, err := b.WithContext(ctx).Where(b.Title.Eq(title)).First()

	return toFoundBook(bookM, err, "find book by title")
}

func toFoundBook(bookM *model.BookModel, err error, op string) (*entity.Book, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, op)
	}

	return toBookDomain(bookM), nil
}

func (repo *bookRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Book, error) {
	if len(ids) == 0 {
		return []*entity.Book{}, nil
	}

	values := make([]driver.Valuer, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}

	b := repo.q.BookModel
	bookMs, err := b.WithContext(ctx).Where(b.ID.In(values...)).Order(b.Title).Find()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find books by ids")
	}

	return toBookDomains(bookMs), nil
}

func (repo *bookRepository) Search(ctx context.Context, filter repository.BookFilter) ([]*entity.Book, error) {
	page := filter.Page.Normalize()

	stmt := repo.db.WithContext(ctx).Model(&model.BookModel{})
	if filter.Title != "" {
		stmt = stmt.Where(`title LIKE ? ESCAPE '\'`, containsPattern(filter.Title))
	}
	if filter.Year != nil {
		stmt = stmt.Where("year = ?", *filter.Year)
	}

	var bookMs []*model.BookModel
	if err := stmt.Order("title").Limit(page.Limit).Offset(page.Offset).Find(&bookMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "search books")
	}

	return toBookDomains(bookMs), nil
}

func (repo *bookRepository) ListIDsByNovelist(ctx context.Context, novelistID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	b := repo.q.BookModel
	err := b.WithContext(ctx).
		Where(b.NovelistID.Eq(novelistID)).
		Order(b.Title).
		Pluck(b.ID, &ids)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list book ids by novelist")
	}

	return ids, nil
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "generate book id")
		}
		book.ID = id
	}

	bookM := fromBookDomain(book)
	if err := repo.q.BookModel.WithContext(ctx).Create(bookM); err != nil {
		return translateBookWriteError(err, "create book")
	}

	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	now := repo.db.NowFunc()

	b := repo.q.BookModel
	info, err := b.WithContext(ctx).
		Where(b.ID.Eq(book.ID)).
		UpdateSimple(
			b.Year.Value(book.Year),
			b.Title.Value(book.Title),
			b.NovelistID.Value(book.NovelistID),
			b.UpdatedAt.Value(now),
		)
	if err != nil {
		return translateBookWriteError(err, "update book")
	}
	if info.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	book.UpdatedAt = now

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	b := repo.q.BookModel
	info, err := b.WithContext(ctx).Where(b.ID.Eq(id)).Delete()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete book")
	}
	if info.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

func (repo *bookRepository) DeleteByNovelist(ctx context.Context, novelistID uuid.UUID) (int64, error) {
	b := repo.q.BookModel
	info, err := b.WithContext(ctx).Where(b.NovelistID.Eq(novelistID)).Delete()
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "delete books by novelist")
	}

	return info.RowsAffected, nil
}

func translateBookWriteError(err error, op string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrBookAlreadyExists.WrapMessage(op)
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrNovelistNotFound.WrapMessage(op)
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WithDetails("ano must be between 1 and 9999")
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// --- Mapper Functions ---

func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:         data.ID,
		Year:       data.Year,
		Title:      data.Title,
		NovelistID: data.NovelistID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toBookDomains(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, bookM := range data {
		books = append(books, toBookDomain(bookM))
	}

	return books
}

func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:         data.ID,
		Year:       data.Year,
		Title:      data.Title,
		NovelistID: data.NovelistID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
