// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"madr/internal/delivery/api/middleware"
	"madr/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ServiceHandler  *handler.ServiceHandler
	AuthHandler     *handler.AuthHandler
	AccountHandler  *handler.AccountHandler
	NovelistHandler *handler.NovelistHandler
	BookHandler     *handler.BookHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	serviceHandler  *handler.ServiceHandler
	authHandler     *handler.AuthHandler
	accountHandler  *handler.AccountHandler
	novelistHandler *handler.NovelistHandler
	bookHandler     *handler.BookHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		serviceHandler:  params.ServiceHandler,
		authHandler:     params.AuthHandler,
		accountHandler:  params.AccountHandler,
		novelistHandler: params.NovelistHandler,
		bookHandler:     params.BookHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	requireAuth := r.authMiddleware.Authenticate

	e.GET("/", r.serviceHandler.Root)
	e.GET("/health", r.serviceHandler.Health)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.POST("/refresh_token", r.authHandler.RefreshToken, requireAuth)
	}

	// Updates and deletes are further restricted to the account owner
	accountGroup := e.Group("/conta")
	{
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.PUT("/:id", r.accountHandler.Update, requireAuth)
		accountGroup.DELETE("/:id", r.accountHandler.Delete, requireAuth)
	}

	novelistGroup := e.Group("/romancista")
	{
		novelistGroup.GET("", r.novelistHandler.List)
		novelistGroup.GET("/:id", r.novelistHandler.Get)
		novelistGroup.POST("", r.novelistHandler.Create, requireAuth)
		novelistGroup.PATCH("/:id", r.novelistHandler.Update, requireAuth)
		novelistGroup.DELETE("/:id", r.novelistHandler.Delete, requireAuth)
	}

	bookGroup := e.Group("/livro")
	{
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.GET("/busca", r.bookHandler.Search)
		bookGroup.GET("/:id", r.bookHandler.Get)
		bookGroup.POST("", r.bookHandler.Create, requireAuth)
		bookGroup.PATCH("/:id", r.bookHandler.Update, requireAuth)
		bookGroup.DELETE("/:id", r.bookHandler.Delete, requireAuth)
	}
}
