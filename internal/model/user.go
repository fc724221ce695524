// File: internal/model/user.go
package model

// Profile GET/PUT /api/v1/profile
type Profile struct {
	ID                   string `json:"id"`
	Email                string `json:"email"`
	Location             string `json:"location"`
	CreatedAt            string `json:"created_at"`
	LastLoggedInAt       string `json:"last_logged_in_at"`
	EmailVerified        bool   `json:"email_verified"`
	PublicLeaderboard    bool   `json:"public_leaderboard"`
	Hireable             bool   `json:"hireable"`
	ShowEmailInPublic    bool   `json:"show_email_in_public"`
	HeartbeatsTimeoutSec int    `json:"heartbeats_timeout_sec"`
	Name                 string `json:"name"`
	Username             string `json:"username"`
	Bio                  string `json:"bio"`
	GithubHandle         string `json:"github_handle"`
	TwitterHandle        string `json:"twitter_handle"`
	LinkedInHandle       string `json:"linked_in_handle"`
}

// UserAgent 為外掛（編輯器 plugin）回報的 user agent
type UserAgent struct {
	ID                 string `json:"id"`
	Value              string `json:"value"`
	Editor             string `json:"editor"`
	Version            string `json:"version"`
	OS                 string `json:"os"`
	LastSeenAt         string `json:"last_seen_at"`
	IsBrowserExtension bool   `json:"is_browser_extension"`
	IsDesktopApp       bool   `json:"is_desktop_app"`
	CreatedAt          string `json:"created_at"`
	CLIVersion         string `json:"cli_version"`
	GoVersion          string `json:"go_version"`
}

type APIKey struct {
	APIKey string `json:"apiKey"`
}
