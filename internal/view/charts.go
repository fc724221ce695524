package view

import (
	"fmt"
	"sort"
	"time"

	"wakatimer/internal/model"
)

// PieSlice 圓餅圖的一塊
type PieSlice struct {
	Key   string
	Total float64
}

// PieData 依名稱加總指定類別的 total_seconds，由大到小
func PieData(summaries []model.Summary, key string) []PieSlice {
	totals := map[string]float64{}
	var order []string
	for _, s := range summaries {
		for _, item := range statItems(s, key) {
			if _, ok := totals[item.Name]; !ok {
				order = append(order, item.Name)
			}
			totals[item.Name] += item.TotalSeconds
		}
	}
	out := make([]PieSlice, 0, len(order))
	for _, name := range order {
		out = append(out, PieSlice{Key: name, Total: totals[name]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

func statItems(s model.Summary, key string) []model.StatItem {
	switch key {
	case "categories":
		return s.Categories
	case "editors":
		return s.Editors
	case "languages":
		return s.Languages
	case "machines":
		return s.Machines
	case "operating_systems":
		return s.OperatingSystems
	case "projects":
		return s.Projects
	}
	return nil
}

// DailyRow 每日各專案時數
type DailyRow struct {
	Name     string
	Date     string
	Total    float64
	Projects map[string]float64
}

// DailyCoding 將單日 summary 轉為圖表列
func DailyCoding(s model.Summary) DailyRow {
	row := DailyRow{Projects: map[string]float64{}}
	if t, ok := parseRangeStart(s.Range.Start); ok {
		row.Name = fmt.Sprintf("%s %s", t.Format("Mon Jan"), ordinal(t.Day()))
		row.Date = t.Format("2006-01-02")
	}
	for _, p := range s.Projects {
		// 同名專案保留第一筆
		if _, ok := row.Projects[p.Name]; !ok {
			row.Projects[p.Name] = p.TotalSeconds
		}
		row.Total += p.TotalSeconds
	}
	return row
}

// WeekdayRow 依星期彙總的分類時數
type WeekdayRow struct {
	Day        string
	Categories map[string]float64
}

// WeekdayCategories 回傳各星期的分類時數與全期間分類總和
func WeekdayCategories(summaries []model.Summary) ([]WeekdayRow, map[string]float64) {
	totals := map[string]float64{}
	byDay := map[string]map[string]float64{}
	var days []string
	for _, s := range summaries {
		t, ok := parseRangeStart(s.Range.Start)
		if !ok {
			continue
		}
		day := t.Weekday().String()
		if _, seen := byDay[day]; !seen {
			byDay[day] = map[string]float64{}
			days = append(days, day)
		}
		for _, c := range s.Categories {
			byDay[day][c.Name] += c.TotalSeconds
			totals[c.Name] += c.TotalSeconds
		}
	}
	rows := make([]WeekdayRow, 0, len(days))
	for _, d := range days {
		rows = append(rows, WeekdayRow{Day: d, Categories: byDay[d]})
	}
	return rows, totals
}

func parseRangeStart(v string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
