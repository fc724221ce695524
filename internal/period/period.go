// File: internal/period/period.go
package period

import (
	"net/url"
	"time"

	"github.com/duke-git/lancet/v2/datetime"
)

// Label 儀表板的時間範圍選項
type Label string

const (
	Last7Days              Label = "Last 7 Days"
	Last7DaysFromYesterday Label = "Last 7 Days From Yesterday"
	Last14Days             Label = "Last 14 Days"
	Last30Days             Label = "Last 30 Days"
	ThisWeek               Label = "This Week"
	LastWeek               Label = "Last Week"
	LastMonth              Label = "Last Month"
)

const dateLayout = "2006-01-02"

// Labels 依下拉選單顯示順序
var Labels = []Label{
	Last7Days,
	Last7DaysFromYesterday,
	Last14Days,
	Last30Days,
	ThisWeek,
	LastWeek,
	LastMonth,
}

// Valid 是否為已知選項
func (l Label) Valid() bool {
	for _, v := range Labels {
		if v == l {
			return true
		}
	}
	return false
}

// Range 計算 label 對應的起訖日，週以星期日開始；未知 label 視為 Last 7 Days
func Range(label Label, now time.Time) (time.Time, time.Time) {
	switch label {
	case Last7DaysFromYesterday:
		yesterday := now.AddDate(0, 0, -1)
		return yesterday.AddDate(0, 0, -7), yesterday
	case Last14Days:
		return now.AddDate(0, 0, -14), now
	case Last30Days:
		return now.AddDate(0, 0, -30), now
	case ThisWeek:
		return datetime.BeginOfWeek(now, time.Sunday), now
	case LastWeek:
		start := datetime.BeginOfWeek(now, time.Sunday).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 6)
	case LastMonth:
		lastMonth := datetime.BeginOfMonth(now).AddDate(0, -1, 0)
		return datetime.BeginOfMonth(lastMonth), datetime.EndOfMonth(lastMonth)
	default:
		return now.AddDate(0, 0, -7), now
	}
}

// BuildQuery 回傳 start/end（yyyy-MM-dd）
func BuildQuery(label Label, now time.Time) url.Values {
	start, end := Range(label, now)
	q := url.Values{}
	q.Set("start", FormatDate(start))
	q.Set("end", FormatDate(end))
	return q
}

// SelectedLabel 找出與 start/end 完全相符的選項，缺值或無相符時為 Last 7 Days
func SelectedLabel(start, end string, now time.Time) Label {
	if start == "" || end == "" {
		return Last7Days
	}
	for _, l := range Labels {
		s, e := Range(l, now)
		if FormatDate(s) == start && FormatDate(e) == end {
			return l
		}
	}
	return Last7Days
}

// Resolve 回傳實際查詢用的 start/end；query 無效時退回 Last 7 Days
func Resolve(start, end string, now time.Time) (string, string) {
	s, errS := ParseDate(start, now.Location())
	e, errE := ParseDate(end, now.Location())
	if errS != nil || errE != nil || e.Before(s) {
		q := BuildQuery(Last7Days, now)
		return q.Get("start"), q.Get("end")
	}
	return FormatDate(s), FormatDate(e)
}

func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(dateLayout, value, loc)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
