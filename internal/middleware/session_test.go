package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionEcho() *echo.Echo {
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret-0123456789"))))
	e.Use(SessionID)
	e.Use(Logger)
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, SessionIDFrom(c))
	})
	return e
}

func TestSessionID_StableAcrossRequests(t *testing.T) {
	e := newSessionEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	first := rec.Body.String()
	require.NotEmpty(t, first)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, first, rec.Body.String())
}

func TestSessionID_NewBrowserGetsNewID(t *testing.T) {
	e := newSessionEcho()

	a := httptest.NewRecorder()
	e.ServeHTTP(a, httptest.NewRequest(http.MethodGet, "/", nil))
	b := httptest.NewRecorder()
	e.ServeHTTP(b, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEqual(t, a.Body.String(), b.Body.String())
}

func TestSessionID_GarbageCookie(t *testing.T) {
	e := newSessionEcho()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionName, Value: "not-a-valid-cookie"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestFromContext_Default(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestLogger_CarriesSessionAndView(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	e := newSessionEcho()
	e.GET("/views/:id", func(c echo.Context) error {
		FromContext(c.Request().Context()).Info("polled")
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/views/v-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	line := buf.String()
	assert.Contains(t, line, `"msg":"polled"`)
	assert.Contains(t, line, `"view_id":"v-1"`)
	assert.Contains(t, line, `"session_id":`)
}
