package view

import (
	"wakatimer/internal/model"
	"wakatimer/internal/period"
)

// AuthForm 登入、註冊、OTP 與密碼相關表單共用
type AuthForm struct {
	Email   string
	Next    string
	FlowID  string
	Token   string
	Message string
	Error   string
}

// Dashboard dashboard 與 project 頁共用
type Dashboard struct {
	Selected         period.Label
	Labels           []period.Label
	Start            string
	End              string
	Total            float64
	DailyAverage     float64
	Projects         []PieSlice
	Languages        []PieSlice
	Editors          []PieSlice
	OperatingSystems []PieSlice
	Categories       []PieSlice
	Machines         []PieSlice
	Daily            []DailyRow
	Weekdays         []WeekdayRow
	CategoryTotals   map[string]float64
}

// NewDashboard 由 summaries 組出頁面資料
func NewDashboard(res model.SummariesResponse, selected period.Label, start, end string) Dashboard {
	d := Dashboard{
		Selected:         selected,
		Labels:           period.Labels,
		Start:            start,
		End:              end,
		Total:            res.CumulativeTotal.Seconds,
		DailyAverage:     res.DailyAverage.Seconds,
		Projects:         PieData(res.Data, "projects"),
		Languages:        PieData(res.Data, "languages"),
		Editors:          PieData(res.Data, "editors"),
		OperatingSystems: PieData(res.Data, "operating_systems"),
		Categories:       PieData(res.Data, "categories"),
		Machines:         PieData(res.Data, "machines"),
	}
	if d.Total == 0 {
		for _, s := range res.Data {
			d.Total += s.GrandTotal.TotalSeconds
		}
	}
	for _, s := range res.Data {
		d.Daily = append(d.Daily, DailyCoding(s))
	}
	d.Weekdays, d.CategoryTotals = WeekdayCategories(res.Data)
	return d
}

type Project struct {
	Name      string
	BadgeURL  string
	Dashboard Dashboard
}

type Leaderboard struct {
	Leaders  model.LeadersResponse
	Language string
	Page     int
}

// SettingsTab 設定頁的分頁
type SettingsTab struct {
	Key   string
	Title string
}

var SettingsTabs = []SettingsTab{
	{Key: "profile", Title: "Profile"},
	{Key: "preferences", Title: "Preferences"},
	{Key: "api-key", Title: "API Key"},
	{Key: "integrations", Title: "Integrations"},
	{Key: "security", Title: "Security"},
}

// SelectTab 未知分頁回到 profile
func SelectTab(key string) string {
	for _, t := range SettingsTabs {
		if t.Key == key {
			return key
		}
	}
	return SettingsTabs[0].Key
}

type Settings struct {
	Tab            string
	Tabs           []SettingsTab
	Profile        model.Profile
	APIKey         string
	HasWakatime    bool
	History        []model.AuthEvent
	AvatarTemplate string
}

type Clients struct {
	Clients []model.Client
}

type Invoices struct {
	Invoices []model.Invoice
	Clients  []model.Client
}

type Goals struct {
	Goals []model.Goal
}

type Plugins struct {
	Agents []model.UserAgent
}
