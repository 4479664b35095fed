package postgres

import (
	"context"
	"testing"

	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/domain/repository"
	"madr/internal/infra/persistence/persistencetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createNovelist(t *testing.T, db *gorm.DB, name string) *entity.Novelist {
	t.Helper()

	novelist := &entity.Novelist{Name: name}
	require.NoError(t, NewNovelistRepository(db).Create(context.Background(), novelist))

	return novelist
}

func createBook(t *testing.T, db *gorm.DB, novelistID uuid.UUID, title string, year int) *entity.Book {
	t.Helper()

	book := &entity.Book{Title: title, Year: year, NovelistID: novelistID}
	require.NoError(t, NewBookRepository(db).Create(context.Background(), book))

	return book
}

func TestNovelistRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	repo := NewNovelistRepository(db)

	novelist := createNovelist(t, db, "clarice lispector")
	assert.NotEqual(t, uuid.Nil, novelist.ID)

	found, err := repo.FindByName(ctx, "clarice lispector")
	require.NoError(t, err)
	assert.Equal(t, novelist.ID, found.ID)

	err = repo.Create(ctx, &entity.Novelist{Name: "clarice lispector"})
	assert.ErrorIs(t, err, domainerrors.ErrNovelistAlreadyExists)

	novelist.Name = "clarice"
	require.NoError(t, repo.Update(ctx, novelist))
	found, err = repo.FindByID(ctx, novelist.ID)
	require.NoError(t, err)
	assert.Equal(t, "clarice", found.Name)

	require.NoError(t, repo.Delete(ctx, novelist.ID))
	_, err = repo.FindByID(ctx, novelist.ID)
	assert.ErrorIs(t, err, repository.ErrNovelistNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, novelist.ID), repository.ErrNovelistNotFound)
	assert.ErrorIs(t, repo.Update(ctx, novelist), repository.ErrNovelistNotFound)
}

func TestNovelistRepository_Search(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	repo := NewNovelistRepository(db)

	createNovelist(t, db, "machado de assis")
	createNovelist(t, db, "clarice lispector")
	createNovelist(t, db, "100%_real")

	all, err := repo.Search(ctx, repository.NovelistFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "100%_real", all[0].Name)
	assert.Equal(t, "clarice lispector", all[1].Name)

	matches, err := repo.Search(ctx, repository.NovelistFilter{Name: "assis"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "machado de assis", matches[0].Name)

	// Wildcards in the filter match literally.
	matches, err = repo.Search(ctx, repository.NovelistFilter{Name: "%_"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "100%_real", matches[0].Name)

	window, err := repo.Search(ctx, repository.NovelistFilter{Page: entity.Page{Limit: 1, Offset: 2}})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "machado de assis", window[0].Name)
}

func TestBookRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	repo := NewBookRepository(db)
	novelist := createNovelist(t, db, "machado de assis")

	book := createBook(t, db, novelist.ID, "dom casmurro", 1899)

	found, err := repo.FindByTitle(ctx, "dom casmurro")
	require.NoError(t, err)
	assert.Equal(t, book.ID, found.ID)
	assert.Equal(t, 1899, found.Year)
	assert.Equal(t, novelist.ID, found.NovelistID)

	err = repo.Create(ctx, &entity.Book{Title: "dom casmurro", Year: 1900, NovelistID: novelist.ID})
	assert.ErrorIs(t, err, domainerrors.ErrBookAlreadyExists)

	err = repo.Create(ctx, &entity.Book{Title: "orphan", Year: 1900, NovelistID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrNovelistNotFound)

	err = repo.Create(ctx, &entity.Book{Title: "too old", Year: 0, NovelistID: novelist.ID})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	book.Year = 1900
	require.NoError(t, repo.Update(ctx, book))
	found, err = repo.FindByID(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 1900, found.Year)

	require.NoError(t, repo.Delete(ctx, book.ID))
	_, err = repo.FindByID(ctx, book.ID)
	assert.ErrorIs(t, err, repository.ErrBookNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, book.ID), repository.ErrBookNotFound)
}

func TestBookRepository_Search(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	repo := NewBookRepository(db)
	machado := createNovelist(t, db, "machado de assis")

	createBook(t, db, machado.ID, "dom casmurro", 1899)
	createBook(t, db, machado.ID, "memorias postumas", 1881)
	createBook(t, db, machado.ID, "quincas borba", 1891)

	all, err := repo.Search(ctx, repository.BookFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "dom casmurro", all[0].Title)

	byTitle, err := repo.Search(ctx, repository.BookFilter{Title: "or"})
	require.NoError(t, err)
	require.Len(t, byTitle, 2)
	assert.Equal(t, "memorias postumas", byTitle[0].Title)
	assert.Equal(t, "quincas borba", byTitle[1].Title)

	year := 1891
	both, err := repo.Search(ctx, repository.BookFilter{Title: "or", Year: &year})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "quincas borba", both[0].Title)

	year = 1899
	byYear, err := repo.Search(ctx, repository.BookFilter{Year: &year})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, "dom casmurro", byYear[0].Title)
}

func TestBookRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	repo := NewBookRepository(db)
	novelist := createNovelist(t, db, "machado de assis")

	b1 := createBook(t, db, novelist.ID, "quincas borba", 1891)
	b2 := createBook(t, db, novelist.ID, "dom casmurro", 1899)

	books, err := repo.FindByIDs(ctx, []uuid.UUID{b1.ID, uuid.New(), b2.ID})
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, b2.ID, books[0].ID)
	assert.Equal(t, b1.ID, books[1].ID)

	books, err = repo.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestBookRepository_ByNovelist(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	repo := NewBookRepository(db)
	machado := createNovelist(t, db, "machado de assis")
	clarice := createNovelist(t, db, "clarice lispector")

	b1 := createBook(t, db, machado.ID, "quincas borba", 1891)
	b2 := createBook(t, db, machado.ID, "dom casmurro", 1899)
	kept := createBook(t, db, clarice.ID, "a hora da estrela", 1977)

	ids, err := repo.ListIDsByNovelist(ctx, machado.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b2.ID, b1.ID}, ids)

	removed, err := repo.DeleteByNovelist(ctx, machado.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.FindByID(ctx, kept.ID)
	require.NoError(t, err)

	removed, err = repo.DeleteByNovelist(ctx, machado.ID)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNovelistDelete_CascadesToBooks(t *testing.T) {
	ctx := context.Background()
	db := persistencetest.OpenSQLite(t)
	novelist := createNovelist(t, db, "machado de assis")
	book := createBook(t, db, novelist.ID, "dom casmurro", 1899)

	require.NoError(t, NewNovelistRepository(db).Delete(ctx, novelist.ID))

	_, err := NewBookRepository(db).FindByID(ctx, book.ID)
	assert.ErrorIs(t, err, repository.ErrBookNotFound)
}
