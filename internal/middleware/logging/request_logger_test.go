package loggingmw

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/logging"
)

func newEcho(logs *bytes.Buffer) *echo.Echo {
	e := echo.New()
	e.Use(RequestLogger(logging.NewTo(logs, "debug"), "/health"))

	e.GET("/ok", func(c echo.Context) error {
		logging.FromContext(c.Request().Context()).Info("inside handler")
		return c.String(http.StatusOK, "hello")
	})
	e.GET("/boom", func(c echo.Context) error { return errors.New("boom") })
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return e
}

func serve(e *echo.Echo, path, rid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if rid != "" {
		req.Header.Set(echo.HeaderXRequestID, rid)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestLogger_InjectsContextLogger(t *testing.T) {
	var logs bytes.Buffer
	e := newEcho(&logs)

	rec := serve(e, "/ok", "rid-1")
	require.Equal(t, http.StatusOK, rec.Code)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg":"inside handler"`)
	assert.Contains(t, lines[0], `"request_id":"rid-1"`)
	assert.Contains(t, lines[1], `"route":"/ok"`)
	assert.Contains(t, lines[1], `"bytes_out":5`)
}

func TestRequestLogger_HandlerErrorIsRenderedAndLogged(t *testing.T) {
	var logs bytes.Buffer
	e := newEcho(&logs)

	rec := serve(e, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, logs.String(), `"level":"ERROR"`)
	assert.Contains(t, logs.String(), `"error":"boom"`)
}

func TestRequestLogger_QuietPrefixes(t *testing.T) {
	var logs bytes.Buffer
	e := newEcho(&logs)

	rec := serve(e, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logs.String())
}
