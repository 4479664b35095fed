package handler

import (
	"log/slog"
	"net/http"

	"madr/internal/delivery/api/response"
	"madr/internal/domain/entity"
	"madr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const msgNovelistDeleted = "Romancista deletada do MADR."

// NovelistHandlerParams holds dependencies for NovelistHandler, injected by Fx.
type NovelistHandlerParams struct {
	fx.In

	NovelistUC usecase.NovelistUsecase
	Logger     *slog.Logger
}

// NovelistHandler holds dependencies for novelist-related handlers
type NovelistHandler struct {
	novelistUC usecase.NovelistUsecase
	logger     *slog.Logger
}

// NewNovelistHandler is the constructor for NovelistHandler
func NewNovelistHandler(params NovelistHandlerParams) *NovelistHandler {
	return &NovelistHandler{
		novelistUC: params.NovelistUC,
		logger:     params.Logger,
	}
}

type NovelistRequest struct {
	Name string `json:"nome" validate:"required,min=1,max=255"`
}

type NovelistQuery struct {
	PageQuery
	Name string `query:"romancista_nome"`
}

type NovelistResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"nome"`
}

type NovelistListResponse struct {
	Novelists []NovelistResponse `json:"romancistas"`
}

func newNovelistResponse(novelist *entity.Novelist) NovelistResponse {
	return NovelistResponse{ID: novelist.ID, Name: novelist.Name}
}

func (h *NovelistHandler) Create(c echo.Context) error {
	var req NovelistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	novelist, err := h.novelistUC.Create(c.Request().Context(), &usecase.NovelistInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newNovelistResponse(novelist))
}

func (h *NovelistHandler) Get(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	novelist, err := h.novelistUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNovelistResponse(novelist))
}

// List filters novelists by a substring of their name.
func (h *NovelistHandler) List(c echo.Context) error {
	var req NovelistQuery
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	novelists, err := h.novelistUC.Search(c.Request().Context(), req.Name, req.page())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := NovelistListResponse{Novelists: make([]NovelistResponse, 0, len(novelists))}
	for _, novelist := range novelists {
		resp.Novelists = append(resp.Novelists, newNovelistResponse(novelist))
	}

	return response.Success(c, http.StatusOK, resp)
}

func (h *NovelistHandler) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NovelistRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	novelist, err := h.novelistUC.Update(c.Request().Context(), id, &usecase.NovelistInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newNovelistResponse(novelist))
}

func (h *NovelistHandler) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.novelistUC.Delete(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, msgNovelistDeleted)
}
