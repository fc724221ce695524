package api

type OTPForm struct {
	Email string `form:"email" validate:"min=3,max=32"`
}

// OTPVerifyForm flow_id 對應伺服器端保存的 PKCE verifier
type OTPVerifyForm struct {
	FlowID string `form:"flow_id" validate:"required"`
	OTP    string `form:"otp" validate:"min=3"`
}
