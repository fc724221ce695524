package api

type ForgotPasswordForm struct {
	Email string `form:"email" validate:"min=3,max=32"`
}

type ResetPasswordForm struct {
	Token           string `form:"token" validate:"required"`
	Password        string `form:"password" validate:"min=3,max=32"`
	ConfirmPassword string `form:"confirm_password" validate:"min=3,max=32"`
}

func (f ResetPasswordForm) PasswordsMatch() bool {
	return f.Password == f.ConfirmPassword
}
