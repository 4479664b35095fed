package context

import (
	"context"
	"log/slog"

	"madr/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header carrying the request id in both directions.
const HeaderXRequestID = "X-Request-Id"

// echoScopeKey stores the scope in echo.Context.
const echoScopeKey = "madr.request_scope"

type scopeKey struct{}

// RequestScope holds what MADR attaches to a single HTTP request. The same
// value is reachable from echo.Context in handlers and from context.Context in
// services, so the account set by the auth middleware is visible to both.
type RequestScope struct {
	// RequestID is echoed in X-Request-Id, error bodies and domain events.
	RequestID string
	// Logger carries the request_id attribute.
	Logger *slog.Logger
	// Account is nil until the bearer token has been verified.
	Account *entity.Account
}

// Begin opens the scope of a request and attaches it to c and to the request context.
func Begin(c echo.Context, requestID string, logger *slog.Logger) *RequestScope {
	scope := &RequestScope{RequestID: requestID, Logger: logger}
	attach(c, scope)

	return scope
}

// WithScope returns a copy of ctx carrying scope.
func WithScope(ctx context.Context, scope *RequestScope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// FromContext returns the scope stored in ctx, or nil outside a request.
func FromContext(ctx context.Context) *RequestScope {
	scope, _ := ctx.Value(scopeKey{}).(*RequestScope)

	return scope
}

// RequestID returns the id of the request, or "" before Begin ran.
func RequestID(c echo.Context) string {
	if scope := lookup(c); scope != nil {
		return scope.RequestID
	}

	return ""
}

// RequestIDFromContext returns the request id stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if scope := FromContext(ctx); scope != nil {
		return scope.RequestID
	}

	return ""
}

// Logger returns the request logger stored in ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope := FromContext(ctx); scope != nil && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}

// SetAccount records the account resolved from the bearer token.
func SetAccount(c echo.Context, account *entity.Account) {
	scope := lookup(c)
	if scope == nil {
		scope = &RequestScope{}
		attach(c, scope)
	}

	scope.Account = account
}

// Account returns the authenticated account, if the route went through the auth middleware.
func Account(c echo.Context) (*entity.Account, bool) {
	scope := lookup(c)
	if scope == nil || scope.Account == nil {
		return nil, false
	}

	return scope.Account, true
}

func lookup(c echo.Context) *RequestScope {
	if scope, ok := c.Get(echoScopeKey).(*RequestScope); ok {
		return scope
	}

	return FromContext(c.Request().Context())
}

func attach(c echo.Context, scope *RequestScope) {
	c.Set(echoScopeKey, scope)
	c.SetRequest(c.Request().WithContext(WithScope(c.Request().Context(), scope)))
}
