package api

// swagger:model api.AvatarPreviewResponse
type AvatarPreviewResponse struct {
	AvatarURL string `json:"avatar_url" example:"api/avatar/5f4dcc3b5aa765d61d8327deb882cf99.svg"`
}

// swagger:model api.PingResponse
type PingResponse struct {
	// 回應訊息
	Message string `json:"message" example:"pong"`
}
