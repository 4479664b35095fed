package handler

import (
	"log/slog"
	"net/http"

	"madr/internal/delivery/api/response"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"
	"madr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const msgBookDeleted = "Livro deletado do MADR."

// BookHandlerParams holds dependencies for BookHandler, injected by Fx.
type BookHandlerParams struct {
	fx.In

	BookUC usecase.BookUsecase
	Logger *slog.Logger
}

// BookHandler holds dependencies for book-related handlers
type BookHandler struct {
	bookUC usecase.BookUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler
func NewBookHandler(params BookHandlerParams) *BookHandler {
	return &BookHandler{
		bookUC: params.BookUC,
		logger: params.Logger,
	}
}

// BookRequest is the body of book creation and update.
type BookRequest struct {
	Year       int    `json:"ano" validate:"required,min=1,max=9999"`
	Title      string `json:"titulo" validate:"required,min=1,max=255"`
	NovelistID string `json:"romancista_id" validate:"required,uuid"`
}

func (r *BookRequest) input() *usecase.BookInput {
	// validated by the uuid tag
	novelistID, _ := uuid.Parse(r.NovelistID)

	return &usecase.BookInput{
		Year:       r.Year,
		Title:      r.Title,
		NovelistID: novelistID,
	}
}

// BookQuery filters the book listing. Year is optional, so it is read separately.
type BookQuery struct {
	PageQuery
	Title string `query:"livro_nome"`
}

type SearchQuery struct {
	PageQuery
	Text string `query:"q" validate:"required"`
}

type BookResponse struct {
	ID         uuid.UUID `json:"id"`
	Year       int       `json:"ano"`
	Title      string    `json:"titulo"`
	NovelistID uuid.UUID `json:"romancista_id"`
}

type BookListResponse struct {
	Books []BookResponse `json:"livros"`
}

func newBookResponse(book *entity.Book) BookResponse {
	return BookResponse{
		ID:         book.ID,
		Year:       book.Year,
		Title:      book.Title,
		NovelistID: book.NovelistID,
	}
}

func newBookListResponse(books []*entity.Book) BookListResponse {
	resp := BookListResponse{Books: make([]BookResponse, 0, len(books))}
	for _, book := range books {
		resp.Books = append(resp.Books, newBookResponse(book))
	}

	return resp
}

func (h *BookHandler) Create(c echo.Context) error {
	var req BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.Create(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBookResponse(book))
}

func (h *BookHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookResponse(book))
}

// List filters books by title substring and publication year.
func (h *BookHandler) List(c echo.Context) error {
	var req BookQuery
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	query := &usecase.BookQuery{Title: req.Title, Page: req.page()}
	if c.QueryParam("livro_ano") != "" {
		var year int
		if err := echo.QueryParamsBinder(c).MustInt("livro_ano", &year).BindError(); err != nil {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("livro_ano must be an integer"))
		}
		query.Year = &year
	}

	books, err := h.bookUC.Search(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookListResponse(books))
}

// Search runs a full-text title search.
func (h *BookHandler) Search(c echo.Context) error {
	var req SearchQuery
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	books, err := h.bookUC.FullTextSearch(c.Request().Context(), req.Text, req.page())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookListResponse(books))
}

func (h *BookHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	book, err := h.bookUC.Update(c.Request().Context(), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBookResponse(book))
}

func (h *BookHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.bookUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, msgBookDeleted)
}
