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

const msgAccountDeleted = "Conta deletada com sucesso."

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// AccountRequest is the body of account creation and update.
type AccountRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Email    string `json:"email" validate:"required,min=3,max=40,email"`
	Password string `json:"password" validate:"required,min=3,max=40"`
}

func (r *AccountRequest) input() *usecase.AccountInput {
	return &usecase.AccountInput{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// AccountListResponse wraps a page of accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"contas"`
}

func newAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	}
}

// List returns a page of accounts.
func (h *AccountHandler) List(c echo.Context) error {
	var req PageQuery
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	accounts, err := h.accountUC.List(c.Request().Context(), req.page())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := AccountListResponse{Accounts: make([]AccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		resp.Accounts = append(resp.Accounts, newAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, resp)
}

// Create registers a new account.
func (h *AccountHandler) Create(c echo.Context) error {
	var req AccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	account, err := h.accountUC.Create(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAccountResponse(account))
}

// Update replaces the profile of the caller's own account.
func (h *AccountHandler) Update(c echo.Context) error {
	account, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	updated, err := h.accountUC.Update(c.Request().Context(), account, id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAccountResponse(updated))
}

// Delete removes the caller's own account.
func (h *AccountHandler) Delete(c echo.Context) error {
	account, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.Delete(c.Request().Context(), account, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, http.StatusOK, msgAccountDeleted)
}
