// Package handler contains the HTTP handlers of the MADR API.
package handler

import (
	"net/http"

	deliverycontext "madr/internal/delivery/context"
	"madr/internal/domain/entity"
	domainerrors "madr/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	msgHello = "Olá mundo!"

	statusOK = "ok"
)

// PageQuery is embedded by every list request. It must stay exported for echo to bind it.
type PageQuery struct {
	Limit  int `query:"limit" validate:"min=0"`
	Offset int `query:"offset" validate:"min=0"`
}

func (q PageQuery) page() entity.Page {
	return entity.Page{Limit: q.Limit, Offset: q.Offset}.Normalize()
}

// bindAndValidate binds the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

func paramID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")
	}

	return id, nil
}

// caller returns the account set by the auth middleware.
func caller(c echo.Context) (*entity.Account, error) {
	account, ok := deliverycontext.Account(c)
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return account, nil
}

// ServiceHandler serves the unauthenticated service endpoints.
type ServiceHandler struct{}

func NewServiceHandler() *ServiceHandler {
	return &ServiceHandler{}
}

// Root greets the caller.
func (h *ServiceHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": msgHello})
}

// Health reports that the process is serving requests.
func (h *ServiceHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": statusOK})
}
