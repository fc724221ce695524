package pages

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wakatimer/internal/backend"
	"wakatimer/internal/cache"
	"wakatimer/internal/config"
	"wakatimer/internal/database"
	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/model"
	"wakatimer/internal/session"
	"wakatimer/internal/validation"
	"wakatimer/internal/view"
)

var user = model.SessionData{
	IsLoggedIn: true,
	Token:      "tok",
	User:       model.SessionUser{ID: "u1", Email: "a@b.co", Token: "tok"},
}

// apiCall 後端收到的請求
type apiCall struct {
	Method string
	Path   string
	Query  url.Values
	Token  string
	Body   map[string]any
}

// fakeAPI 依 "METHOD /path" 回應固定內容
type fakeAPI struct {
	mu     sync.Mutex
	calls  []apiCall
	routes map[string]func(w http.ResponseWriter)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	call := apiCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query(), Token: r.Header.Get("Token")}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	route, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	route(w)
}

func (f *fakeAPI) Calls() []apiCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiCall(nil), f.calls...)
}

func reply(status int, body string) func(w http.ResponseWriter) {
	return func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

type testEnv struct {
	e    *echo.Echo
	deps *handler.Deps
	api  *fakeAPI
}

func newTestEnv(t *testing.T, routes map[string]func(w http.ResponseWriter)) *testEnv {
	t.Helper()
	api := &fakeAPI{routes: routes}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	mgr, err := session.NewManager(strings.Repeat("k", 32), "wakatimer-auth-session", time.Hour, false)
	require.NoError(t, err)
	r, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = r
	e.Validator = validation.New()

	mem := cache.NewMemoryCache(time.Minute)
	t.Cleanup(func() { _ = mem.Close() })

	deps := &handler.Deps{
		Config:   &config.Config{UI: config.UIConfig{LeaderboardCacheTTL: time.Hour}},
		DB:       &database.FakeDB{},
		Cache:    mem,
		Backend:  backend.New(srv.URL, time.Second),
		Sessions: mgr,
	}
	return &testEnv{e: e, deps: deps, api: api}
}

func (env *testEnv) request(method, target string, form url.Values, sess model.SessionData) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.Set(middleware.ContextSessionKey, sess)
	return c, rec
}

// withParam 設定 :id 等路徑參數
func withParam(c echo.Context, name, value string) echo.Context {
	c.SetParamNames(name)
	c.SetParamValues(value)
	return c
}

func fixNow(t *testing.T, ts time.Time) {
	t.Helper()
	now = func() time.Time { return ts }
	t.Cleanup(func() { now = time.Now })
}
