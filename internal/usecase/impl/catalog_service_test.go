package impl

import (
	"context"
	"errors"
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

type catalogMocks struct {
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	novelistRepo *mockRepo.MockNovelistRepository
	bookRepo     *mockRepo.MockBookRepository
	index        *mockSvc.MockCatalogIndex
	publisher    *mockSvc.MockEventPublisher
}

func newCatalogMocks(t *testing.T) catalogMocks {
	t.Helper()

	mocks := catalogMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		novelistRepo: mockRepo.NewMockNovelistRepository(t),
		bookRepo:     mockRepo.NewMockBookRepository(t),
		index:        mockSvc.NewMockCatalogIndex(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}
	mocks.factory.EXPECT().NewNovelistRepository().Return(mocks.novelistRepo).Maybe()
	mocks.factory.EXPECT().NewBookRepository().Return(mocks.bookRepo).Maybe()

	return mocks
}

func createTestNovelistService(t *testing.T) (usecase.NovelistUsecase, catalogMocks) {
	t.Helper()

	mocks := newCatalogMocks(t)
	svc := NewNovelistService(NovelistServiceParams{
		TxManager:    mocks.txManager,
		NovelistRepo: mocks.novelistRepo,
		Index:        mocks.index,
		Publisher:    mocks.publisher,
		Logger:       newDiscardLogger(),
	})

	return svc, mocks
}

func createTestBookService(t *testing.T) (usecase.BookUsecase, catalogMocks) {
	t.Helper()

	mocks := newCatalogMocks(t)
	svc := NewBookService(BookServiceParams{
		TxManager: mocks.txManager,
		BookRepo:  mocks.bookRepo,
		Index:     mocks.index,
		Publisher: mocks.publisher,
		Logger:    newDiscardLogger(),
	})

	return svc, mocks
}

func TestNovelistService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitized name is stored", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByName(mock.Anything, "machado de assis").Return(nil, repository.ErrNovelistNotFound)
		mocks.novelistRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(n *entity.Novelist) bool {
			return n.Name == "machado de assis"
		})).Return(nil)
		expectEvent(mocks.publisher, service.EventNovelistCreated, nil)

		novelist, err := svc.Create(ctx, &usecase.NovelistInput{Name: " Machado  de ASSIS "})
		require.NoError(t, err)
		assert.Equal(t, "machado de assis", novelist.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByName(mock.Anything, "clarice").Return(&entity.Novelist{ID: uuid.New(), Name: "clarice"}, nil)

		_, err := svc.Create(ctx, &usecase.NovelistInput{Name: "Clarice"})
		assert.ErrorIs(t, err, domainerrors.ErrNovelistAlreadyExists)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := createTestNovelistService(t)

		_, err := svc.Create(ctx, &usecase.NovelistInput{Name: "   "})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestNovelistService_GetAndSearch(t *testing.T) {
	ctx := context.Background()
	svc, mocks := createTestNovelistService(t)
	id := uuid.New()

	mocks.novelistRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNovelistNotFound)
	_, err := svc.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNovelistNotFound)

	mocks.novelistRepo.EXPECT().Search(mock.Anything, repository.NovelistFilter{
		Name: "assis",
		Page: entity.Page{Limit: 5, Offset: 0},
	}).Return([]*entity.Novelist{{ID: uuid.New(), Name: "machado de assis"}}, nil)

	novelists, err := svc.Search(ctx, " ASSIS", entity.Page{Limit: 5, Offset: -3})
	require.NoError(t, err)
	assert.Len(t, novelists, 1)
}

func TestNovelistService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("renames", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)
		novelist := &entity.Novelist{ID: uuid.New(), Name: "clarice"}

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelist.ID).Return(novelist, nil)
		mocks.novelistRepo.EXPECT().FindByName(mock.Anything, "clarice lispector").Return(nil, repository.ErrNovelistNotFound)
		mocks.novelistRepo.EXPECT().Update(mock.Anything, novelist).Return(nil)
		expectEvent(mocks.publisher, service.EventNovelistUpdated, &novelist.ID)

		updated, err := svc.Update(ctx, novelist.ID, &usecase.NovelistInput{Name: "Clarice Lispector"})
		require.NoError(t, err)
		assert.Equal(t, "clarice lispector", updated.Name)
	})

	t.Run("keeping the same name is allowed", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)
		novelist := &entity.Novelist{ID: uuid.New(), Name: "clarice"}

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelist.ID).Return(novelist, nil)
		mocks.novelistRepo.EXPECT().FindByName(mock.Anything, "clarice").Return(novelist, nil)
		mocks.novelistRepo.EXPECT().Update(mock.Anything, novelist).Return(nil)
		expectEvent(mocks.publisher, service.EventNovelistUpdated, &novelist.ID)

		_, err := svc.Update(ctx, novelist.ID, &usecase.NovelistInput{Name: "clarice"})
		require.NoError(t, err)
	})

	t.Run("name taken by another novelist", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)
		novelist := &entity.Novelist{ID: uuid.New(), Name: "clarice"}

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelist.ID).Return(novelist, nil)
		mocks.novelistRepo.EXPECT().FindByName(mock.Anything, "machado").Return(&entity.Novelist{ID: uuid.New()}, nil)

		_, err := svc.Update(ctx, novelist.ID, &usecase.NovelistInput{Name: "machado"})
		assert.ErrorIs(t, err, domainerrors.ErrNovelistAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)
		id := uuid.New()

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNovelistNotFound)

		_, err := svc.Update(ctx, id, &usecase.NovelistInput{Name: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrNovelistNotFound)
	})
}

func TestNovelistService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes books and unindexes them", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)
		id := uuid.New()
		bookIDs := []uuid.UUID{uuid.New(), uuid.New()}

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, id).Return(&entity.Novelist{ID: id}, nil)
		mocks.bookRepo.EXPECT().ListIDsByNovelist(mock.Anything, id).Return(bookIDs, nil)
		mocks.bookRepo.EXPECT().DeleteByNovelist(mock.Anything, id).Return(int64(2), nil)
		mocks.novelistRepo.EXPECT().Delete(mock.Anything, id).Return(nil)
		mocks.index.EXPECT().RemoveBook(mock.Anything, bookIDs[0]).Return(nil)
		mocks.index.EXPECT().RemoveBook(mock.Anything, bookIDs[1]).Return(errors.New("index down"))
		expectEvent(mocks.publisher, service.EventNovelistDeleted, &id)

		require.NoError(t, svc.Delete(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mocks := createTestNovelistService(t)
		id := uuid.New()

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrNovelistNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id), domainerrors.ErrNovelistNotFound)
	})
}

func TestBookService_Create(t *testing.T) {
	ctx := context.Background()
	novelistID := uuid.New()

	t.Run("creates, indexes and publishes", func(t *testing.T) {
		svc, mocks := createTestBookService(t)

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelistID).Return(&entity.Novelist{ID: novelistID}, nil)
		mocks.bookRepo.EXPECT().FindByTitle(mock.Anything, "dom casmurro").Return(nil, repository.ErrBookNotFound)
		mocks.bookRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *entity.Book) bool {
			return b.Title == "dom casmurro" && b.Year == 1899 && b.NovelistID == novelistID
		})).Return(nil)
		mocks.index.EXPECT().IndexBook(mock.Anything, mock.Anything).Return(nil)
		expectEvent(mocks.publisher, service.EventBookCreated, nil)

		book, err := svc.Create(ctx, &usecase.BookInput{Year: 1899, Title: "Dom  Casmurro", NovelistID: novelistID})
		require.NoError(t, err)
		assert.Equal(t, "dom casmurro", book.Title)
	})

	t.Run("unknown novelist", func(t *testing.T) {
		svc, mocks := createTestBookService(t)

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelistID).Return(nil, repository.ErrNovelistNotFound)

		_, err := svc.Create(ctx, &usecase.BookInput{Year: 1899, Title: "x", NovelistID: novelistID})
		assert.ErrorIs(t, err, domainerrors.ErrNovelistNotFound)
	})

	t.Run("duplicate title", func(t *testing.T) {
		svc, mocks := createTestBookService(t)

		runInTx(mocks.txManager, mocks.factory)
		mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelistID).Return(&entity.Novelist{ID: novelistID}, nil)
		mocks.bookRepo.EXPECT().FindByTitle(mock.Anything, "x").Return(&entity.Book{ID: uuid.New()}, nil)

		_, err := svc.Create(ctx, &usecase.BookInput{Year: 1899, Title: "x", NovelistID: novelistID})
		assert.ErrorIs(t, err, domainerrors.ErrBookAlreadyExists)
	})

	t.Run("invalid input", func(t *testing.T) {
		svc, _ := createTestBookService(t)

		for _, input := range []*usecase.BookInput{
			{Year: 0, Title: "x", NovelistID: novelistID},
			{Year: 10000, Title: "x", NovelistID: novelistID},
			{Year: 1899, Title: "  ", NovelistID: novelistID},
			{Year: 1899, Title: "x"},
		} {
			_, err := svc.Create(ctx, input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
	})
}

func TestBookService_Update(t *testing.T) {
	ctx := context.Background()
	novelistID := uuid.New()
	book := &entity.Book{ID: uuid.New(), Year: 1899, Title: "dom casmurro", NovelistID: novelistID}

	svc, mocks := createTestBookService(t)

	runInTx(mocks.txManager, mocks.factory)
	mocks.bookRepo.EXPECT().FindByID(mock.Anything, book.ID).Return(book, nil)
	mocks.novelistRepo.EXPECT().FindByID(mock.Anything, novelistID).Return(&entity.Novelist{ID: novelistID}, nil)
	mocks.bookRepo.EXPECT().FindByTitle(mock.Anything, "dom casmurro").Return(book, nil)
	mocks.bookRepo.EXPECT().Update(mock.Anything, book).Return(nil)
	mocks.index.EXPECT().IndexBook(mock.Anything, book).Return(errors.New("index down"))
	expectEvent(mocks.publisher, service.EventBookUpdated, &book.ID)

	updated, err := svc.Update(ctx, book.ID, &usecase.BookInput{Year: 1900, Title: "Dom Casmurro", NovelistID: novelistID})
	require.NoError(t, err)
	assert.Equal(t, 1900, updated.Year)
}

func TestBookService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc, mocks := createTestBookService(t)
		id := uuid.New()

		mocks.bookRepo.EXPECT().Delete(mock.Anything, id).Return(nil)
		mocks.index.EXPECT().RemoveBook(mock.Anything, id).Return(nil)
		expectEvent(mocks.publisher, service.EventBookDeleted, &id)

		require.NoError(t, svc.Delete(ctx, id))
	})

	t.Run("not found", func(t *testing.T) {
		svc, mocks := createTestBookService(t)
		id := uuid.New()

		mocks.bookRepo.EXPECT().Delete(mock.Anything, id).Return(repository.ErrBookNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id), domainerrors.ErrBookNotFound)
	})
}

func TestBookService_Search(t *testing.T) {
	svc, mocks := createTestBookService(t)
	year := 1899

	mocks.bookRepo.EXPECT().Search(mock.Anything, repository.BookFilter{
		Title: "casmurro",
		Year:  &year,
		Page:  entity.Page{Limit: entity.DefaultPageLimit},
	}).Return([]*entity.Book{}, nil)

	_, err := svc.Search(context.Background(), &usecase.BookQuery{Title: " Casmurro", Year: &year})
	require.NoError(t, err)
}

func TestBookService_FullTextSearch(t *testing.T) {
	ctx := context.Background()
	page := entity.Page{Limit: 10}

	t.Run("keeps index relevance order", func(t *testing.T) {
		svc, mocks := createTestBookService(t)
		first := &entity.Book{ID: uuid.New(), Title: "z"}
		second := &entity.Book{ID: uuid.New(), Title: "a"}
		ids := []uuid.UUID{first.ID, uuid.New(), second.ID}

		mocks.index.EXPECT().SearchBooks(mock.Anything, "casmurro", page).Return(ids, nil)
		mocks.bookRepo.EXPECT().FindByIDs(mock.Anything, ids).Return([]*entity.Book{second, first}, nil)

		books, err := svc.FullTextSearch(ctx, "Casmurro", page)
		require.NoError(t, err)
		assert.Equal(t, []*entity.Book{first, second}, books)
	})

	t.Run("falls back to title filter when index is unavailable", func(t *testing.T) {
		svc, mocks := createTestBookService(t)
		books := []*entity.Book{{ID: uuid.New(), Title: "dom casmurro"}}

		mocks.index.EXPECT().SearchBooks(mock.Anything, "casmurro", page).Return(nil, service.ErrSearchUnavailable)
		mocks.bookRepo.EXPECT().Search(mock.Anything, repository.BookFilter{Title: "casmurro", Page: page}).Return(books, nil)

		got, err := svc.FullTextSearch(ctx, "casmurro", page)
		require.NoError(t, err)
		assert.Equal(t, books, got)
	})

	t.Run("falls back when the index fails", func(t *testing.T) {
		svc, mocks := createTestBookService(t)

		mocks.index.EXPECT().SearchBooks(mock.Anything, "casmurro", page).Return(nil, errors.New("timeout"))
		mocks.bookRepo.EXPECT().Search(mock.Anything, repository.BookFilter{Title: "casmurro", Page: page}).Return(nil, nil)

		_, err := svc.FullTextSearch(ctx, "casmurro", page)
		require.NoError(t, err)
	})
}
