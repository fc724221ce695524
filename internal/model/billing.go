// File: internal/model/billing.go
package model

type Client struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id,omitempty"`
	Name       string   `json:"name"`
	Currency   string   `json:"currency"`
	HourlyRate float64  `json:"hourly_rate"`
	Projects   []string `json:"projects"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type InvoiceLineItem struct {
	Title         string  `json:"title"`
	TotalSeconds  float64 `json:"total_seconds"`
	AutoGenerated bool    `json:"auto_generated"`
}

type Invoice struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Amount         float64           `json:"amount"`
	Origin         string            `json:"origin"`
	Destination    string            `json:"destination"`
	Heading        string            `json:"heading"`
	FinalMessage   string            `json:"final_message"`
	InvoiceSummary string            `json:"invoice_summary"`
	Client         Client            `json:"client"`
	CreatedAt      string            `json:"created_at"`
	StartDate      string            `json:"start_date"`
	EndDate        string            `json:"end_date"`
	Tax            float64           `json:"tax"`
	LineItems      []InvoiceLineItem `json:"line_items"`
}

// ClientInput 建立或更新 client 時送出的 body
type ClientInput struct {
	Name       string   `json:"name"`
	Currency   string   `json:"currency"`
	HourlyRate float64  `json:"hourly_rate"`
	Projects   []string `json:"projects"`
}

// InvoiceInput 日期為 RFC3339
type InvoiceInput struct {
	ClientID  string `json:"client_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}
