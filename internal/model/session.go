// File: internal/model/session.go
package model

// SessionUser 為後端登入 API 回傳並存入 cookie 的使用者資訊
type SessionUser struct {
	ID                     string `json:"id"`
	Email                  string `json:"email"`
	Token                  string `json:"token"`
	Avatar                 string `json:"avatar"`
	HasWakatimeIntegration bool   `json:"has_wakatime_integration"`
}

// SessionData 加密 cookie 的內容，也是 /api/auth/* 的 data 欄位
type SessionData struct {
	User       SessionUser `json:"user"`
	IsLoggedIn bool        `json:"isLoggedIn"`
	Token      string      `json:"token"`
}

// AuthToken 優先使用頂層 token
func (s SessionData) AuthToken() string {
	if s.Token != "" {
		return s.Token
	}
	return s.User.Token
}
