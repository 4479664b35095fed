package handler

import (
	"log/slog"
	"net/http"

	"madr/internal/delivery/api/response"
	"madr/internal/domain/entity"
	"madr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the token endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// TokenRequest is the form body of a login. Username carries the email.
type TokenRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse is returned by login and refresh.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResponse(token *entity.AccessToken) TokenResponse {
	tokenType := token.Type
	if tokenType == "" {
		tokenType = entity.TokenTypeBearer
	}

	return TokenResponse{AccessToken: token.Token, TokenType: tokenType}
}

// Token exchanges credentials for an access token.
func (h *AuthHandler) Token(c echo.Context) error {
	var req TokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(token))
}

// RefreshToken issues a fresh token for the authenticated account.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	account, err := caller(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.authUC.Refresh(c.Request().Context(), account)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newTokenResponse(token))
}
