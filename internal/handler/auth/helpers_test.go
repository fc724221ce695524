package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"wakatimer/internal/authflow"
	"wakatimer/internal/backend"
	"wakatimer/internal/cache"
	"wakatimer/internal/config"
	"wakatimer/internal/events"
	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/model"
	"wakatimer/internal/oauth"
	"wakatimer/internal/session"
	"wakatimer/internal/validation"
	"wakatimer/internal/view"
)

const loginOK = `{"data":{"user":{"id":"u1","email":"a@b.co","token":"tok"},"token":"tok"},"message":"ok"}`

type testEnv struct {
	e     *echo.Echo
	deps  *handler.Deps
	calls *atomic.Int32
}

// newTestEnv 後端以 httptest.Server 模擬，h 為 nil 時任何呼叫都視為失敗
func newTestEnv(t *testing.T, h http.HandlerFunc) *testEnv {
	t.Helper()
	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if h == nil {
			t.Errorf("unexpected backend call %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		h(w, r)
	}))
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

	cfg := &config.Config{UI: config.UIConfig{
		AvatarURLTemplate: "api/avatar/{email_hash}.svg",
		DefaultAvatarURL:  "assets/images/unknown.svg",
	}}
	deps := &handler.Deps{
		Config:   cfg,
		Cache:    mem,
		Backend:  backend.New(srv.URL, time.Second),
		Sessions: mgr,
		Flows:    authflow.NewStore(mem),
		GitHub:   oauth.NewGitHub("gh-client", "http://localhost:8080/api/oauth/callback/github", "read:user user:email"),
	}
	return &testEnv{e: e, deps: deps, calls: calls}
}

func jsonReply(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (env *testEnv) form(method, target string, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.Set(middleware.ContextSessionKey, session.DefaultSession())
	return c, rec
}

func (env *testEnv) json(method, target, body string, sess model.SessionData) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	c.Set(middleware.ContextSessionKey, sess)
	return c, rec
}

// subscribe 接上事件匯流排並回傳下一筆事件
func (env *testEnv) subscribe(t *testing.T) func() model.AuthEvent {
	t.Helper()
	bus := events.NewBus()
	t.Cleanup(bus.Close)
	env.deps.Events = bus
	sub := bus.Subscribe(4, events.TopicAuth)
	return func() model.AuthEvent {
		select {
		case msg := <-sub.Receiver:
			ev, ok := msg.Fields[events.FieldPayload].(model.AuthEvent)
			require.True(t, ok)
			return ev
		case <-time.After(time.Second):
			t.Fatal("no auth event published")
			return model.AuthEvent{}
		}
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "wakatimer-auth-session" {
			return c
		}
	}
	return nil
}
