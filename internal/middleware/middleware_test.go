package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wakatimer/internal/model"
	"wakatimer/internal/session"
)

func newManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager("0123456789abcdef0123456789abcdef", "sid", time.Hour, false)
	require.NoError(t, err)
	return m
}

func loggedInCookie(t *testing.T, m *session.Manager) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	_, err := m.Create(rec, httptest.NewRequest(http.MethodGet, "/", nil), model.SessionData{
		User:  model.SessionUser{ID: "u1"},
		Token: "tok",
	})
	require.NoError(t, err)
	return rec.Result().Cookies()[0]
}

func TestLoadSession(t *testing.T) {
	m := newManager(t)
	e := echo.New()

	var got model.SessionData
	h := LoadSession(m)(func(c echo.Context) error {
		got = SessionFrom(c)
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))
	require.False(t, got.IsLoggedIn)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(loggedInCookie(t, m))
	require.NoError(t, h(e.NewContext(req, httptest.NewRecorder())))
	require.True(t, got.IsLoggedIn)
	require.Equal(t, "u1", got.User.ID)
}

func TestSessionFromWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.Equal(t, session.DefaultSession(), SessionFrom(c))
}

func TestRequireSession(t *testing.T) {
	e := echo.New()
	called := false
	h := RequireSession(func(c echo.Context) error { called = true; return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/settings?tab=security", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextSessionKey, session.DefaultSession())
	require.NoError(t, h(c))
	require.False(t, called)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/auth/signin?next=%2Fsettings%3Ftab%3Dsecurity", rec.Header().Get(echo.HeaderLocation))

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
	c.Set(ContextSessionKey, model.SessionData{IsLoggedIn: true})
	require.NoError(t, h(c))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAPISession(t *testing.T) {
	e := echo.New()
	h := RequireAPISession(func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/backend/x", nil), httptest.NewRecorder())
	err := h(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, he.Code)

	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/backend/x", nil), rec)
	c.Set(ContextSessionKey, model.SessionData{IsLoggedIn: true})
	require.NoError(t, h(c))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	e := echo.New()
	e.Use(RequestLogger())
	e.GET("/ok", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusInternalServerError, "x") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
