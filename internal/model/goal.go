// File: internal/model/goal.go
package model

type GoalChartData struct {
	ActualSeconds          float64 `json:"actual_seconds"`
	ActualSecondsText      string  `json:"actual_seconds_text"`
	GoalSeconds            float64 `json:"goal_seconds"`
	GoalSecondsText        string  `json:"goal_seconds_text"`
	RangeStatus            string  `json:"range_status"`
	RangeStatusReason      string  `json:"range_status_reason"`
	RangeStatusReasonShort string  `json:"range_status_reason_short"`
	Range                  Range   `json:"range"`
}

type Goal struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
	SnoozeUntil      int64           `json:"snooze_until"`
	TargetDirection  string          `json:"target_direction"`
	Seconds          int             `json:"seconds"`
	ImproveByPercent float64         `json:"improve_by_percent"`
	Delta            string          `json:"delta"`
	Type             string          `json:"type"`
	Title            string          `json:"title"`
	CustomTitle      *string         `json:"custom_title"`
	CumulativeStatus string          `json:"cumulative_status"`
	Status           string          `json:"status"`
	IsSnoozed        bool            `json:"is_snoozed"`
	IsEnabled        bool            `json:"is_enabled"`
	ChartData        []GoalChartData `json:"chart_data"`
}

// GoalInput POST /api/v1/users/current/goals
type GoalInput struct {
	Projects        []string `json:"projects"`
	Languages       []string `json:"languages"`
	Categories      []string `json:"categories"`
	Editors         []string `json:"editors"`
	Seconds         int      `json:"seconds"`
	Delta           string   `json:"delta"`
	TargetDirection string   `json:"target_direction"`
	Type            string   `json:"type"`
}
