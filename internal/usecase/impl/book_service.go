package impl

import (
	"context"
	"log/slog"

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

const (
	minBookYear = 1
	maxBookYear = 9999
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	index     service.CatalogIndex
	publisher service.EventPublisher
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Index     service.CatalogIndex
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		index:     params.Index,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

func (srv *bookService) Create(ctx context.Context, input *usecase.BookInput) (*entity.Book, error) {
	book, err := newBookFromInput(input)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		if err := ensureNovelistExists(ctx, repoFactory.NewNovelistRepository(), book.NovelistID); err != nil {
			return err
		}
		if err := ensureBookTitleFree(ctx, bookRepo, book.Title, uuid.Nil); err != nil {
			return err
		}

		return bookRepo.Create(ctx, book)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}

	srv.log(ctx).Info("Book created", slog.Any("bookID", book.ID))
	srv.syncIndex(ctx, book)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBookCreated, book.ID, newBookPayload(book))

	return book, nil
}

func (srv *bookService) Get(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil, domainerrors.ErrBookNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

// Search lists books by title substring and exact year. Filters that are
// not set are ignored, so an empty query lists every book.
func (srv *bookService) Search(ctx context.Context, query *usecase.BookQuery) ([]*entity.Book, error) {
	books, err := srv.bookRepo.Search(ctx, repository.BookFilter{
		Title: util.SanitizeText(query.Title),
		Year:  query.Year,
		Page:  query.Page.Normalize(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search books")
	}

	return books, nil
}

// FullTextSearch returns books in index relevance order. When the index is
// disabled or failing, it degrades to the title substring filter.
func (srv *bookService) FullTextSearch(ctx context.Context, text string, page entity.Page) ([]*entity.Book, error) {
	text = util.SanitizeText(text)
	page = page.Normalize()

	ids, err := srv.index.SearchBooks(ctx, text, page)
	if err != nil {
		if !errors.Is(err, service.ErrSearchUnavailable) {
			srv.log(ctx).Warn("Catalog index search failed, using title filter", slog.Any("error", err))
		}

		return srv.Search(ctx, &usecase.BookQuery{Title: text, Page: page})
	}

	books, err := srv.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load books")
	}

	return orderByIDs(books, ids), nil
}

func (srv *bookService) Update(ctx context.Context, id uuid.UUID, input *usecase.BookInput) (*entity.Book, error) {
	changes, err := newBookFromInput(input)
	if err != nil {
		return nil, err
	}

	var updated *entity.Book
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		book, err := bookRepo.FindByID(ctx, id)
		if errors.Is(err, repository.ErrBookNotFound) {
			return domainerrors.ErrBookNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find book")
		}

		if err := ensureNovelistExists(ctx, repoFactory.NewNovelistRepository(), changes.NovelistID); err != nil {
			return err
		}
		if err := ensureBookTitleFree(ctx, bookRepo, changes.Title, id); err != nil {
			return err
		}

		book.Year = changes.Year
		book.Title = changes.Title
		book.NovelistID = changes.NovelistID
		if err := bookRepo.Update(ctx, book); err != nil {
			return err
		}
		updated = book

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update book")
	}

	srv.log(ctx).Info("Book updated", slog.Any("bookID", id))
	srv.syncIndex(ctx, updated)
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBookUpdated, id, newBookPayload(updated))

	return updated, nil
}

func (srv *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	err := srv.bookRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrBookNotFound) {
		return domainerrors.ErrBookNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete book")
	}

	if err := srv.index.RemoveBook(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to remove book from catalog index", slog.Any("bookID", id), slog.Any("error", err))
	}

	srv.log(ctx).Info("Book deleted", slog.Any("bookID", id))
	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventBookDeleted, id, bookPayload{ID: id})

	return nil
}

func (srv *bookService) syncIndex(ctx context.Context, book *entity.Book) {
	if err := srv.index.IndexBook(ctx, book); err != nil {
		srv.log(ctx).Warn("Failed to index book", slog.Any("bookID", book.ID), slog.Any("error", err))
	}
}

func newBookFromInput(input *usecase.BookInput) (*entity.Book, error) {
	title, err := sanitizeRequired(input.Title, "titulo")
	if err != nil {
		return nil, err
	}
	if input.Year < minBookYear || input.Year > maxBookYear {
		return nil, domainerrors.ErrValidationFailed.WithDetails("ano must be between 1 and 9999")
	}
	if input.NovelistID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("romancista_id is required")
	}

	return &entity.Book{
		Year:       input.Year,
		Title:      title,
		NovelistID: input.NovelistID,
	}, nil
}

func ensureNovelistExists(ctx context.Context, repo repository.NovelistRepository, id uuid.UUID) error {
	_, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNovelistNotFound) {
		return domainerrors.ErrNovelistNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find novelist")
	}

	return nil
}

// ensureBookTitleFree fails when another book than self already uses title.
func ensureBookTitleFree(ctx context.Context, repo repository.BookRepository, title string, self uuid.UUID) error {
	existing, err := repo.FindByTitle(ctx, title)
	if errors.Is(err, repository.ErrBookNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to check book title")
	}
	if existing.ID != self {
		return domainerrors.ErrBookAlreadyExists
	}

	return nil
}

// orderByIDs returns books in the order of ids, skipping ids without a book.
func orderByIDs(books []*entity.Book, ids []uuid.UUID) []*entity.Book {
	byID := make(map[uuid.UUID]*entity.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	ordered := make([]*entity.Book, 0, len(books))
	for _, id := range ids {
		if book, ok := byID[id]; ok {
			ordered = append(ordered, book)
		}
	}

	return ordered
}
