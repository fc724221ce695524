package api

// SignupForm 表單與 /api/session/signup 共用
// swagger:model api.SignupForm
type SignupForm struct {
	Email          string `form:"email" json:"email" validate:"min=3,max=32" example:"alice@example.com"`
	Password       string `form:"password" json:"password" validate:"min=3,max=32" example:"Secret123!"`
	PasswordRepeat string `form:"password_repeat" json:"password_repeat" validate:"min=3,max=32" example:"Secret123!"`
}

// PasswordsMatch 在送出任何請求前檢查
func (f SignupForm) PasswordsMatch() bool {
	return f.Password == f.PasswordRepeat
}
