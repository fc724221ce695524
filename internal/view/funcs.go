package view

import (
	"fmt"
	"html/template"
	"math"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"NGN": "₦",
	"JPY": "¥",
	"INR": "₹",
	"CAD": "CA$",
	"AUD": "A$",
}

// FuncMap 提供給所有模板
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"hm":              HoursMinutes,
		"hours":           Hours,
		"currency":        Currency,
		"number":          Number,
		"preserveNewLine": PreserveNewLine,
		"humanDate":       HumanDate,
		"percent":         func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}
}

// HoursMinutes 3900 -> "1h 5m"；秒數只在不足一分鐘時顯示
func HoursMinutes(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) {
		return "0h 0m"
	}
	total := int64(seconds)
	h := total / 3600
	m := (total - h*3600) / 60
	s := total - h*3600 - m*60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 && h == 0 && m == 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	if len(parts) == 0 {
		return "0h 0m"
	}
	return strings.Join(parts, " ")
}

// Hours 5400 -> "1.50hrs"
func Hours(seconds float64) string {
	if seconds == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2fhrs", seconds/3600)
}

// Currency 以 en-US 格式輸出金額；未知幣別以代碼作前綴
func Currency(value float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	amount := printer.Sprintf("%.2f", value)
	if sym, ok := currencySymbols[code]; ok {
		return sym + amount
	}
	if unit, err := currency.ParseISO(code); err == nil {
		return unit.String() + " " + amount
	}
	return amount
}

func Number(value float64) string {
	return printer.Sprintf("%.0f", value)
}

// PreserveNewLine 換行轉為 <br />，其餘內容先 escape
func PreserveNewLine(text string) template.HTML {
	escaped := template.HTMLEscapeString(text)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br />"))
}

// HumanDate RFC3339 轉為 "Jan 2, 2006"，無法解析時原樣回傳
func HumanDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006 15:04")
}
