// File: internal/model/summary.go
package model

// Time 是 summaries 中的 grand_total 與各項統計時間
type Time struct {
	Digital      string  `json:"digital"`
	Hours        int     `json:"hours"`
	Minutes      int     `json:"minutes"`
	Seconds      int     `json:"seconds"`
	Text         string  `json:"text"`
	TotalSeconds float64 `json:"total_seconds"`
}

// StatItem 對應 categories/editors/languages/machines/operating_systems/projects 的單筆
type StatItem struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Percent      float64 `json:"percent"`
	Digital      string  `json:"digital"`
	Text         string  `json:"text"`
	TotalSeconds float64 `json:"total_seconds"`
}

type Range struct {
	Date     string `json:"date"`
	End      string `json:"end"`
	Start    string `json:"start"`
	Text     string `json:"text"`
	Timezone string `json:"timezone"`
}

// Summary 為單日統計
type Summary struct {
	Categories       []StatItem `json:"categories"`
	Dependencies     []string   `json:"dependencies"`
	Editors          []StatItem `json:"editors"`
	Languages        []StatItem `json:"languages"`
	Machines         []StatItem `json:"machines"`
	OperatingSystems []StatItem `json:"operating_systems"`
	Projects         []StatItem `json:"projects"`
	Branches         []StatItem `json:"branches"`
	Entities         []StatItem `json:"entities"`
	GrandTotal       Time       `json:"grand_total"`
	Range            Range      `json:"range"`
}

type CumulativeTotal struct {
	Decimal string  `json:"decimal"`
	Digital string  `json:"digital"`
	Seconds float64 `json:"seconds"`
	Text    string  `json:"text"`
}

type DailyAverage struct {
	DaysIncludingHolidays int     `json:"days_including_holidays"`
	DaysMinusHolidays     int     `json:"days_minus_holidays"`
	Holidays              int     `json:"holidays"`
	Seconds               float64 `json:"seconds"`
	Text                  string  `json:"text"`
}

// SummariesResponse GET /api/compat/wakatime/v1/users/current/summaries
type SummariesResponse struct {
	Data            []Summary       `json:"data"`
	Start           string          `json:"start"`
	End             string          `json:"end"`
	CumulativeTotal CumulativeTotal `json:"cumulative_total"`
	DailyAverage    DailyAverage    `json:"daily_average"`
}
