package api

// swagger:model api.SigninForm
type SigninForm struct {
	Email    string `form:"email" json:"email" validate:"min=3,max=32" example:"alice@example.com"`
	Password string `form:"password" json:"password" validate:"min=3,max=32" example:"Secret123!"`
	Next     string `form:"next" json:"-"`
}
