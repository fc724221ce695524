package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"wakatimer/internal/model"
	"wakatimer/internal/session"
)

const ContextSessionKey = "session"

// LoadSession 解析 cookie 並放入 context，未登入時為 DefaultSession
func LoadSession(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextSessionKey, mgr.Load(c.Request()))
			return next(c)
		}
	}
}

// SessionFrom 取出 LoadSession 放入的 session
func SessionFrom(c echo.Context) model.SessionData {
	if s, ok := c.Get(ContextSessionKey).(model.SessionData); ok {
		return s
	}
	return session.DefaultSession()
}

// RequireSession 頁面用，未登入導向登入頁
func RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !SessionFrom(c).IsLoggedIn {
			target := "/auth/signin"
			if uri := c.Request().URL.RequestURI(); uri != "" && uri != "/" {
				target += "?next=" + url.QueryEscape(uri)
			}
			return c.Redirect(http.StatusSeeOther, target)
		}
		return next(c)
	}
}

// RequireAPISession JSON API 用，未登入回 401
func RequireAPISession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !SessionFrom(c).IsLoggedIn {
			return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
		}
		return next(c)
	}
}
