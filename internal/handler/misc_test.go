package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wakatimer/internal/api"
	"wakatimer/internal/backend"
	"wakatimer/internal/config"
	"wakatimer/internal/middleware"
	"wakatimer/internal/model"
	"wakatimer/internal/oauth"
)

func TestAvatarPreviewHandler(t *testing.T) {
	e := echo.New()
	cfg := config.UIConfig{AvatarURLTemplate: "api/avatar/{username_hash}.svg", DefaultAvatarURL: "assets/images/unknown.svg"}

	req := httptest.NewRequest(http.MethodGet, "/api/avatar-preview?username=alice", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, AvatarPreviewHandler(cfg)(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
	var got api.AvatarPreviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "api/avatar/6384e2b2184bcbf58eccf10ca7a6563c.svg", got.AvatarURL)

	req = httptest.NewRequest(http.MethodGet, "/api/avatar-preview", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, AvatarPreviewHandler(cfg)(e.NewContext(req, rec)))
	require.Contains(t, rec.Body.String(), "assets/images/unknown.svg")
}

func TestPKCEHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/pkce", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, PKCEHandler()(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var got oauth.PKCE
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Verifier, 43)
	require.Equal(t, oauth.ChallengeS256(got.Verifier), got.Challenge)
	require.Equal(t, oauth.MethodS256, got.Method)
}

func TestProxyHandler(t *testing.T) {
	var gotPath, gotQuery, gotToken, gotBody, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery, gotToken = r.URL.Path, r.URL.RawQuery, r.Header.Get("Token")
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"g1"}}`))
	}))
	defer srv.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/backend/v1/users/current/goals?x=1", strings.NewReader(`{"seconds":60}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues("v1/users/current/goals")
	c.Set(middleware.ContextSessionKey, model.SessionData{IsLoggedIn: true, Token: "tok"})

	require.NoError(t, ProxyHandler(backend.New(srv.URL, time.Second))(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{"data":{"id":"g1"}}`, rec.Body.String())
	require.Equal(t, "/api/v1/users/current/goals", gotPath)
	require.Equal(t, "x=1", gotQuery)
	require.Equal(t, "tok", gotToken)
	require.Equal(t, `{"seconds":60}`, gotBody)
	require.Equal(t, echo.MIMEApplicationJSON, gotType)
}

func TestProxyHandlerMultipart(t *testing.T) {
	var gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	const ct = "multipart/form-data; boundary=xyz"
	payload := "--xyz\r\nContent-Disposition: form-data; name=\"file\"; filename=\"a.json\"\r\n\r\n[]\r\n--xyz--\r\n"

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/backend/v1/users/current/imports", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, ct)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues("v1/users/current/imports")
	c.Set(middleware.ContextSessionKey, model.SessionData{IsLoggedIn: true, Token: "tok"})

	require.NoError(t, ProxyHandler(backend.New(srv.URL, time.Second))(c))
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, ct, gotType)
	require.Equal(t, payload, gotBody)
}

func TestProxyHandlerBackendDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/v1/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("*")
	c.SetParamValues("v1/profile")

	require.NoError(t, ProxyHandler(backend.New(url, time.Second))(c))
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "backend unavailable")
}
