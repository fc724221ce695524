// File: internal/handler/auth/forms.go
package auth

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/api"
	"wakatimer/internal/backend"
	"wakatimer/internal/handler"
	"wakatimer/internal/model"
	"wakatimer/internal/oauth"
	"wakatimer/internal/validation"
	"wakatimer/internal/view"
)

const unexpectedLoginError = "Unexpected error logging in"

// loginError 後端錯誤訊息優先
func loginError(err error) *view.Flash {
	return &view.Flash{
		Title:       "Login Error!",
		Description: backend.MessageOf(err, unexpectedLoginError),
		Variant:     view.VariantDefault,
	}
}

// SigninHandler 帳號密碼登入
func SigninHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.SigninForm
		if err := c.Bind(&form); err != nil {
			return handler.Render(c, http.StatusBadRequest, "signin.html", "Sign in",
				view.ErrorFlash("Email and password are required"), view.AuthForm{})
		}
		data := view.AuthForm{Email: form.Email, Next: form.Next}
		if err := c.Validate(&form); err != nil {
			return handler.Render(c, http.StatusBadRequest, "signin.html", "Sign in",
				view.ErrorFlash("Email and password are required"), data)
		}

		res, err := d.Backend.Login(c.Request().Context(), form.Email, form.Password)
		d.RecordAuth(c, model.AuthMethodPassword, form.Email, res.Data, err)
		if err != nil {
			log.Warn().Err(err).Str("email", form.Email).Msg("login failed")
			return handler.Render(c, http.StatusOK, "signin.html", "Sign in", loginError(err), data)
		}
		if _, err := d.StartSession(c, res.Data); err != nil {
			log.Error().Err(err).Msg("create session")
			return handler.Render(c, http.StatusOK, "signin.html", "Sign in", loginError(nil), data)
		}
		return c.Redirect(http.StatusSeeOther, safeNext(form.Next))
	}
}

// OTPStartHandler 產生 PKCE 並請後端寄出一次性密碼，verifier 只留在伺服器端
func OTPStartHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.OTPForm
		if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
			return handler.Render(c, http.StatusBadRequest, "signin.html", "Sign in",
				view.ErrorFlash("Invalid credentials"), view.AuthForm{Email: form.Email})
		}
		ctx := c.Request().Context()

		pkce := oauth.NewPKCE()
		res, err := d.Backend.CreateOTP(ctx, backend.OTPCreateRequest{
			Email:           form.Email,
			CodeChallenge:   pkce.Challenge,
			ChallengeMethod: pkce.Method,
		})
		if err != nil {
			log.Warn().Err(err).Msg("otp create failed")
			flash := loginError(err)
			flash.Variant = view.VariantDestructive
			return handler.Render(c, http.StatusOK, "signin.html", "Sign in", flash, view.AuthForm{Email: form.Email})
		}

		flowID, err := d.Flows.SaveOTPFlow(ctx, form.Email, pkce.Verifier)
		if err != nil {
			log.Error().Err(err).Msg("save otp flow")
			return handler.Render(c, http.StatusOK, "signin.html", "Sign in", loginError(nil), view.AuthForm{Email: form.Email})
		}

		var flash *view.Flash
		if res.Message != "" {
			flash = &view.Flash{Title: "Check your email", Description: res.Message, Variant: view.VariantDefault}
		}
		return handler.Render(c, http.StatusOK, "otp_verify.html", "Verify code", flash,
			view.AuthForm{Email: form.Email, FlowID: flowID})
	}
}

// OTPVerifyHandler 取回 verifier 後驗證一次性密碼
func OTPVerifyHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.OTPVerifyForm
		_ = c.Bind(&form)
		if err := c.Validate(&form); err != nil {
			return handler.Render(c, http.StatusBadRequest, "otp_verify.html", "Verify code",
				view.ErrorFlash("OTP is required"), view.AuthForm{FlowID: form.FlowID})
		}
		ctx := c.Request().Context()

		flow, err := d.Flows.ConsumeOTPFlow(ctx, form.FlowID)
		if err != nil {
			log.Warn().Err(err).Msg("consume otp flow")
			return handler.Render(c, http.StatusOK, "signin.html", "Sign in",
				view.ErrorFlash("Your code has expired. Request a new one."), view.AuthForm{})
		}

		res, err := d.Backend.VerifyOTP(ctx, backend.OTPVerifyRequest{
			Email:        flow.Email,
			OTP:          form.OTP,
			CodeVerifier: flow.Verifier,
		})
		d.RecordAuth(c, model.AuthMethodOTP, flow.Email, res.Data, err)
		if err != nil {
			log.Warn().Err(err).Msg("otp verify failed")
			// 同一組 verifier 保留給下一次嘗試
			retryID, serr := d.Flows.SaveOTPFlow(ctx, flow.Email, flow.Verifier)
			if serr != nil {
				log.Error().Err(serr).Msg("save otp flow")
				return handler.Render(c, http.StatusOK, "signin.html", "Sign in", loginError(err), view.AuthForm{Email: flow.Email})
			}
			return handler.Render(c, http.StatusOK, "otp_verify.html", "Verify code", loginError(err),
				view.AuthForm{Email: flow.Email, FlowID: retryID})
		}
		if _, err := d.StartSession(c, res.Data); err != nil {
			log.Error().Err(err).Msg("create session")
			return handler.Render(c, http.StatusOK, "signin.html", "Sign in", loginError(nil), view.AuthForm{Email: flow.Email})
		}
		return c.Redirect(http.StatusSeeOther, dashboardPath)
	}
}

// ForgotPasswordHandler 成功後帶著後端訊息回到登入頁
func ForgotPasswordHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.ForgotPasswordForm
		if err := c.Bind(&form); err != nil || c.Validate(&form) != nil {
			return handler.Render(c, http.StatusBadRequest, "forgot_password.html", "Forgot password",
				view.ErrorFlash("Please enter a valid email"), view.AuthForm{Email: form.Email})
		}
		res, err := d.Backend.ForgotPassword(c.Request().Context(), form.Email)
		if err != nil {
			log.Warn().Err(err).Msg("forgot password failed")
			return handler.Render(c, http.StatusOK, "forgot_password.html", "Forgot password",
				loginError(err), view.AuthForm{Email: form.Email})
		}
		return c.Redirect(http.StatusSeeOther, "/auth/signin?message="+url.QueryEscape(res.Message))
	}
}

// ResetPasswordHandler 密碼不一致時不呼叫後端
func ResetPasswordHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.ResetPasswordForm
		_ = c.Bind(&form)
		data := view.AuthForm{Token: form.Token}
		if !form.PasswordsMatch() {
			return handler.Render(c, http.StatusBadRequest, "reset_password.html", "Reset password",
				view.ErrorFlash("Passwords do not match"), data)
		}
		if err := c.Validate(&form); err != nil {
			return handler.Render(c, http.StatusBadRequest, "reset_password.html", "Reset password",
				view.ErrorFlash(validation.Message(err)), data)
		}
		res, err := d.Backend.ResetPassword(c.Request().Context(), form.Token, form.Password)
		if err != nil {
			log.Warn().Err(err).Msg("reset password failed")
			return handler.Render(c, http.StatusOK, "reset_password.html", "Reset password",
				&view.Flash{Title: "Error", Description: backend.MessageOf(err, "Unexpected error resetting password"), Variant: view.VariantDestructive}, data)
		}
		msg := res.Message
		if msg == "" {
			msg = "Password updated. Sign in with your new password."
		}
		return c.Redirect(http.StatusSeeOther, "/auth/signin?message="+url.QueryEscape(msg))
	}
}

// SignupHandler 密碼不一致時不呼叫後端
func SignupHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.SignupForm
		_ = c.Bind(&form)
		data := view.AuthForm{Email: form.Email}
		if !form.PasswordsMatch() {
			return handler.Render(c, http.StatusBadRequest, "signup.html", "Sign up",
				view.ErrorFlash("Passwords do not match"), data)
		}
		if err := c.Validate(&form); err != nil {
			return handler.Render(c, http.StatusBadRequest, "signup.html", "Sign up",
				view.ErrorFlash("Email and password are required"), data)
		}

		res, err := d.Backend.Signup(c.Request().Context(), form.Email, form.Password, form.PasswordRepeat)
		d.RecordAuth(c, model.AuthMethodSignup, form.Email, res.Data, err)
		if err != nil {
			log.Warn().Err(err).Msg("signup failed")
			return handler.Render(c, http.StatusOK, "signup.html", "Sign up",
				&view.Flash{Title: "Signup Error!", Description: backend.MessageOf(err, "Unexpected error signing up"), Variant: view.VariantDestructive}, data)
		}
		if _, err := d.StartSession(c, res.Data); err != nil {
			log.Error().Err(err).Msg("create session")
			return handler.Render(c, http.StatusOK, "signup.html", "Sign up", loginError(nil), data)
		}
		return c.Redirect(http.StatusSeeOther, dashboardPath)
	}
}
