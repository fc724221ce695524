package api

// swagger:model api.SessionLoginRequest
type SessionLoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Secret123!"`
}

// swagger:model api.SessionUpdateRequest
type SessionUpdateRequest struct {
	HasWakatimeIntegration bool `json:"has_wakatime_integration" example:"true"`
}
