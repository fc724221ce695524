package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"wakatimer/internal/model"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(testSecret, "wakatimer-auth-session", 24*time.Hour, true)
	require.NoError(t, err)
	return m
}

func cookieFrom(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

func TestNewManagerErrors(t *testing.T) {
	_, err := NewManager("", "c", time.Hour, true)
	require.Error(t, err)
	_, err = NewManager(testSecret, "c", 0, true)
	require.Error(t, err)
}

func TestLoadWithoutCookie(t *testing.T) {
	m := newManager(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, DefaultSession(), m.Load(req))
	require.False(t, m.Load(req).IsLoggedIn)
}

func TestCreateAndLoad(t *testing.T) {
	m := newManager(t)
	data := SessionData{
		User:  model.SessionUser{ID: "u1", Email: "a@b.c", Token: "opaque", Avatar: "x.svg"},
		Token: "opaque",
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	created, err := m.Create(rec, req, data)
	require.NoError(t, err)
	require.True(t, created.IsLoggedIn)

	c := cookieFrom(t, rec, "wakatimer-auth-session")
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Equal(t, "/", c.Path)
	require.Equal(t, int((24 * time.Hour).Seconds()), c.MaxAge)
	require.NotContains(t, c.Value, "a@b.c")

	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	next.AddCookie(c)
	loaded := m.Load(next)
	require.True(t, loaded.IsLoggedIn)
	require.Equal(t, "u1", loaded.User.ID)
	require.Equal(t, "opaque", loaded.AuthToken())
}

func TestLoadTamperedOrForeignCookie(t *testing.T) {
	m := newManager(t)
	rec := httptest.NewRecorder()
	_, err := m.Create(rec, httptest.NewRequest(http.MethodGet, "/", nil), SessionData{Token: "t"})
	require.NoError(t, err)
	c := cookieFrom(t, rec, m.CookieName())

	tampered := *c
	tampered.Value = c.Value[:len(c.Value)-4] + "AAAA"
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&tampered)
	require.Equal(t, DefaultSession(), m.Load(req))

	other, err := NewManager("ffffffffffffffffffffffffffffffff", m.CookieName(), time.Hour, true)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(c)
	require.Equal(t, DefaultSession(), other.Load(req))
}

func TestSaveKeepsLoginFlag(t *testing.T) {
	m := newManager(t)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), SessionData{IsLoggedIn: false, Token: "t"}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookieFrom(t, rec, m.CookieName()))
	got := m.Load(req)
	require.False(t, got.IsLoggedIn)
	require.Equal(t, "t", got.Token)
}

func TestDestroy(t *testing.T) {
	m := newManager(t)
	rec := httptest.NewRecorder()
	require.NoError(t, m.Destroy(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
	c := cookieFrom(t, rec, m.CookieName())
	require.Less(t, c.MaxAge, 0)
}

func TestMaxAgeClampedToTokenExpiry(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = time.Now })

	m := newManager(t)

	rec := httptest.NewRecorder()
	tok := signedToken(t, fixed.Add(2*time.Hour))
	_, err := m.Create(rec, httptest.NewRequest(http.MethodGet, "/", nil), SessionData{Token: tok})
	require.NoError(t, err)
	require.Equal(t, 7200, cookieFrom(t, rec, m.CookieName()).MaxAge)

	// exp 比 ttl 晚時仍用 ttl
	rec = httptest.NewRecorder()
	tok = signedToken(t, fixed.Add(72*time.Hour))
	_, err = m.Create(rec, httptest.NewRequest(http.MethodGet, "/", nil), SessionData{Token: tok})
	require.NoError(t, err)
	require.Equal(t, 86400, cookieFrom(t, rec, m.CookieName()).MaxAge)

	// 已過期的 exp 被忽略
	rec = httptest.NewRecorder()
	tok = signedToken(t, fixed.Add(-time.Hour))
	_, err = m.Create(rec, httptest.NewRequest(http.MethodGet, "/", nil), SessionData{Token: tok})
	require.NoError(t, err)
	require.Equal(t, 86400, cookieFrom(t, rec, m.CookieName()).MaxAge)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	got, ok := TokenExpiry(signedToken(t, exp))
	require.True(t, ok)
	require.True(t, got.Equal(exp))

	_, ok = TokenExpiry("")
	require.False(t, ok)
	_, ok = TokenExpiry("not-a-jwt")
	require.False(t, ok)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "x"}).SignedString([]byte("k"))
	require.NoError(t, err)
	_, ok = TokenExpiry(noExp)
	require.False(t, ok)
}
