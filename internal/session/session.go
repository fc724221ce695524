// File: internal/session/session.go
package session

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/hkdf"

	"wakatimer/internal/model"
)

const (
	dataKey  = "data"
	hashInfo = "wakatimer session hash key"
	encInfo  = "wakatimer session block key"
	keyLen   = 32
)

type SessionData = model.SessionData

// DefaultSession 未登入狀態
func DefaultSession() SessionData {
	return SessionData{}
}

// now 測試可覆寫
var now = time.Now

// Manager 管理加密 session cookie 的生命週期
type Manager struct {
	store *sessions.CookieStore
	name  string
	ttl   time.Duration
}

// NewManager 從 secret 以 HKDF 導出簽章與加密金鑰
func NewManager(secret, cookieName string, ttl time.Duration, secure bool) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("session: empty secret")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session: invalid ttl %s", ttl)
	}
	hashKey, err := deriveKey(secret, hashInfo)
	if err != nil {
		return nil, err
	}
	blockKey, err := deriveKey(secret, encInfo)
	if err != nil {
		return nil, err
	}

	store := sessions.NewCookieStore(hashKey, blockKey)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	store.MaxAge(int(ttl.Seconds()))

	return &Manager{store: store, name: cookieName, ttl: ttl}, nil
}

func deriveKey(secret, info string) ([]byte, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(info)), key); err != nil {
		return nil, fmt.Errorf("session: derive key: %w", err)
	}
	return key, nil
}

func (m *Manager) CookieName() string { return m.name }

// Load 讀取 cookie，缺少或遭竄改時回傳 DefaultSession
func (m *Manager) Load(r *http.Request) SessionData {
	sess, err := m.store.Get(r, m.name)
	if err != nil || sess.IsNew {
		return DefaultSession()
	}
	raw, ok := sess.Values[dataKey].(string)
	if !ok {
		return DefaultSession()
	}
	var data SessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return DefaultSession()
	}
	return data
}

// Create 登入成功後建立 session
func (m *Manager) Create(w http.ResponseWriter, r *http.Request, data SessionData) (SessionData, error) {
	data.IsLoggedIn = true
	if err := m.Save(w, r, data); err != nil {
		return DefaultSession(), err
	}
	return data, nil
}

// Save 覆寫 session 內容，cookie 壽命不超過後端 token 的 exp
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, data SessionData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	// 解碼失敗時 Get 仍回傳新的 session
	sess, _ := m.store.Get(r, m.name)
	sess.Values[dataKey] = string(raw)
	opts := *m.store.Options
	opts.MaxAge = m.maxAge(data.AuthToken())
	sess.Options = &opts
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}
	return nil
}

// Destroy 清除 cookie
func (m *Manager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values = map[interface{}]interface{}{}
	opts := *m.store.Options
	opts.MaxAge = -1
	sess.Options = &opts
	return sess.Save(r, w)
}

func (m *Manager) maxAge(token string) int {
	ttl := m.ttl
	if exp, ok := TokenExpiry(token); ok {
		// 已過期的 exp 不採用，避免因時鐘誤差立即失效
		if remaining := exp.Sub(now()); remaining > 0 && remaining < ttl {
			ttl = remaining
		}
	}
	secs := int(ttl.Seconds())
	if secs < 1 {
		secs = 1
	}
	return secs
}

// TokenExpiry 讀取 JWT 的 exp，不驗證簽章；非 JWT 或沒有 exp 時 ok 為 false
func TokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
