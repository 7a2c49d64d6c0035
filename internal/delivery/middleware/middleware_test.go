package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pedido/config"
	deliverycontext "pedido/internal/delivery/context"
	domainerrors "pedido/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newLoggedEcho(debug bool) (*echo.Echo, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/orders/:ref", func(c echo.Context) error { return domainerrors.ErrOrderNotFound })
	e.GET("/api/menu", func(c echo.Context) error { return errors.New("connection refused") })

	return e, buf
}

func serve(e *echo.Echo, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	e, _ := newLoggedEcho(false)

	t.Run("reuses caller id", func(t *testing.T) {
		rec := serve(e, "/health", http.Header{deliverycontext.HeaderXRequestID: {"storefront-123"}})
		assert.Equal(t, "storefront-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates when missing", func(t *testing.T) {
		rec := serve(e, "/health", nil)
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		rec := serve(e, "/health", http.Header{deliverycontext.HeaderXRequestID: {"abc def"}})
		assert.NotEqual(t, "abc def", rec.Header().Get(deliverycontext.HeaderXRequestID))

		rec = serve(e, "/health", http.Header{deliverycontext.HeaderXRequestID: {strings.Repeat("x", maxRequestIDLength+1)}})
		assert.Len(t, rec.Header().Get(deliverycontext.HeaderXRequestID), 36)
	})
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("health is never logged", func(t *testing.T) {
		e, buf := newLoggedEcho(true)
		serve(e, "/health", nil)

		assert.Empty(t, buf.String())
	})

	t.Run("debug logs client errors with the app error status", func(t *testing.T) {
		e, buf := newLoggedEcho(true)
		serve(e, "/api/orders/PED-404", nil)

		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"route":"/api/orders/:ref"`)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"request_id"`)
	})

	t.Run("outside debug only server errors are logged", func(t *testing.T) {
		e, buf := newLoggedEcho(false)
		serve(e, "/api/orders/PED-404", nil)
		assert.Empty(t, buf.String())

		serve(e, "/api/menu", nil)
		assert.Contains(t, buf.String(), `"status":500`)
		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})
}
