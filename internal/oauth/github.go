// File: internal/oauth/github.go
package oauth

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var ErrInvalidState = errors.New("state is invalid")

// State 隨 authorize redirect 傳出，callback 時比對
type State struct {
	ClientID    string `json:"clientId"`
	RedirectURI string `json:"redirectUri"`
	Scope       string `json:"scope"`
	Nonce       string `json:"nonce,omitempty"`
}

// EncodeState base64url(JSON)，不含 padding
func EncodeState(s State) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// DecodeState 同時接受 base64url 與標準 base64
func DecodeState(raw string) (State, error) {
	var s State
	if raw == "" {
		return s, ErrInvalidState
	}
	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.StdEncoding,
		base64.RawStdEncoding,
	} {
		b, err := enc.DecodeString(raw)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(b, &s); err != nil {
			return State{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return s, nil
	}
	return s, ErrInvalidState
}

// GitHub 組出 GitHub authorize URL 並驗證回來的 state
type GitHub struct {
	cfg   *oauth2.Config
	scope string
}

func NewGitHub(clientID, redirectURI, scope string) *GitHub {
	cfg := &oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Endpoint:    github.Endpoint,
	}
	// scope 原樣送出，不做切分
	if scope != "" {
		cfg.Scopes = []string{scope}
	}
	return &GitHub{cfg: cfg, scope: scope}
}

func (g *GitHub) ClientID() string    { return g.cfg.ClientID }
func (g *GitHub) RedirectURI() string { return g.cfg.RedirectURL }
func (g *GitHub) Scope() string       { return g.scope }

// AuthorizeURL 回傳 redirect 目標與編碼後的 state
func (g *GitHub) AuthorizeURL(nonce string) (string, string, error) {
	state, err := EncodeState(State{
		ClientID:    g.cfg.ClientID,
		RedirectURI: g.cfg.RedirectURL,
		Scope:       g.scope,
		Nonce:       nonce,
	})
	if err != nil {
		return "", "", err
	}
	return g.cfg.AuthCodeURL(state), state, nil
}

// ValidateState client id、redirect uri、scope 任一不符即拒絕
func (g *GitHub) ValidateState(raw string) (State, error) {
	s, err := DecodeState(raw)
	if err != nil {
		return State{}, err
	}
	if s.ClientID != g.cfg.ClientID || s.RedirectURI != g.cfg.RedirectURL || s.Scope != g.scope {
		return State{}, ErrInvalidState
	}
	return s, nil
}
