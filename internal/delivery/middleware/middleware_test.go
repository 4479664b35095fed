package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"madr/config"
	deliverycontext "madr/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_KeepsClientID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.Logger(c.Request().Context(), nil))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "client-id", seen)
	assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	for _, header := range []string{"", strings.Repeat("x", maxRequestIDLength+1)} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
		rec := httptest.NewRecorder()

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(e.NewContext(req, rec)))

		id, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	}
}

func TestLoggerMiddleware_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/livro?livro_ano=1899", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := mw.Handle(func(c echo.Context) error {
		return c.NoContent(http.StatusNotFound)
	})(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"path":"/livro"`)
	assert.Contains(t, out, `"query":"livro_ano=1899"`)
	assert.Contains(t, out, `"status":404`)
}

func TestLoggerMiddleware_SilentWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
