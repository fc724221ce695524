// File: internal/model/leaderboard.go
package model

type LanguageStat struct {
	Name         string  `json:"name"`
	TotalSeconds float64 `json:"total_seconds"`
}

type RunningTotal struct {
	TotalSeconds              float64        `json:"total_seconds"`
	HumanReadableTotal        string         `json:"human_readable_total"`
	DailyAverage              float64        `json:"daily_average"`
	HumanReadableDailyAverage string         `json:"human_readable_daily_average"`
	Languages                 []LanguageStat `json:"languages"`
}

// LeaderUser 為排行榜上公開的使用者資訊
type LeaderUser struct {
	ID              string `json:"id"`
	DisplayName     string `json:"display_name"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	IsEmailPublic   bool   `json:"is_email_public"`
	Timezone        string `json:"timezone"`
	LastProject     string `json:"last_project"`
	LastPluginName  string `json:"last_plugin_name"`
	Username        string `json:"username"`
	Website         string `json:"website"`
	Photo           string `json:"photo"`
	CreatedAt       string `json:"created_at"`
	LastHeartbeatAt string `json:"last_heartbeat_at"`
}

type Leader struct {
	Rank         int          `json:"rank"`
	RunningTotal RunningTotal `json:"running_total"`
	User         LeaderUser   `json:"user"`
}

type LeaderboardRange struct {
	EndText   string `json:"end_text"`
	EndDate   string `json:"end_date"`
	StartText string `json:"start_text"`
	StartDate string `json:"start_date"`
	Name      string `json:"name"`
	Text      string `json:"text"`
}

// LeadersResponse GET /api/v1/leaders
type LeadersResponse struct {
	CurrentUser *LeaderUser      `json:"current_user"`
	Data        []Leader         `json:"data"`
	Page        int              `json:"page"`
	TotalPages  int              `json:"total_pages"`
	Language    string           `json:"language"`
	Range       LeaderboardRange `json:"range"`
}
