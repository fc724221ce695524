package api

// ClientForm projects 以逗號分隔
type ClientForm struct {
	Name       string  `form:"name" validate:"min=2"`
	Currency   string  `form:"currency" validate:"min=2"`
	HourlyRate float64 `form:"hourly_rate" validate:"gte=0"`
	Projects   string  `form:"projects" validate:"required"`
}

// InvoiceForm 日期為 yyyy-MM-dd
type InvoiceForm struct {
	ClientID  string `form:"client_id" validate:"required"`
	StartDate string `form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" validate:"required,datetime=2006-01-02"`
}

// GoalForm duration 搭配 unit 換算為秒
type GoalForm struct {
	Duration        int      `form:"duration" validate:"gt=0"`
	Unit            string   `form:"unit" validate:"oneof=hrs mins secs"`
	Delta           string   `form:"delta" validate:"oneof=day week month"`
	TargetDirection string   `form:"target_direction" validate:"oneof=more less"`
	Projects        []string `form:"projects"`
	Languages       []string `form:"languages"`
	Editors         []string `form:"editors"`
	Categories      []string `form:"categories"`
}

func (f GoalForm) Seconds() int {
	switch f.Unit {
	case "hrs":
		return f.Duration * 3600
	case "mins":
		return f.Duration * 60
	}
	return f.Duration
}
