// File: internal/handler/auth/pages.go
package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/view"
)

const dashboardPath = "/dashboard"

// safeNext 只接受站內路徑，避免 open redirect
// 瀏覽器會略過 tab 與換行，含控制字元的值一律不接受
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return dashboardPath
	}
	for i := 0; i < len(next); i++ {
		if next[i] < 0x20 || next[i] == 0x7f {
			return dashboardPath
		}
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return dashboardPath
	}
	return next
}

// formPage 已登入時直接導向 dashboard
func formPage(name, title string, data func(c echo.Context) view.AuthForm) echo.HandlerFunc {
	return func(c echo.Context) error {
		if middleware.SessionFrom(c).IsLoggedIn {
			return c.Redirect(http.StatusSeeOther, dashboardPath)
		}
		return handler.Render(c, http.StatusOK, name, title, nil, data(c))
	}
}

// SigninPage 顯示 ?message 與 ?error
func SigninPage() echo.HandlerFunc {
	return formPage("signin.html", "Sign in", func(c echo.Context) view.AuthForm {
		return view.AuthForm{
			Next:    c.QueryParam("next"),
			Message: c.QueryParam("message"),
			Error:   c.QueryParam("error"),
		}
	})
}

func SignupPage() echo.HandlerFunc {
	return formPage("signup.html", "Sign up", func(echo.Context) view.AuthForm { return view.AuthForm{} })
}

func ForgotPasswordPage() echo.HandlerFunc {
	return formPage("forgot_password.html", "Forgot password", func(echo.Context) view.AuthForm { return view.AuthForm{} })
}

// ResetPasswordPage token 由重設信件的連結帶入
func ResetPasswordPage() echo.HandlerFunc {
	return formPage("reset_password.html", "Reset password", func(c echo.Context) view.AuthForm {
		return view.AuthForm{Token: c.QueryParam("token")}
	})
}
