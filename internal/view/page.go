package view

import "wakatimer/internal/model"

// Flash 表單動作後顯示的訊息
type Flash struct {
	Title       string
	Description string
	Variant     string
}

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
	VariantSuccess     = "success"
)

func ErrorFlash(description string) *Flash {
	return &Flash{Title: "Error", Description: description, Variant: VariantDestructive}
}

// Page 所有模板共用的資料
type Page struct {
	Title   string
	Session model.SessionData
	Flash   *Flash
	Data    any
}
