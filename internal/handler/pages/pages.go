// File: internal/handler/pages/pages.go
package pages

import (
	"net/http"
	"time"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/backend"
	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/view"
)

// now 測試可覆寫
var now = time.Now

const signinPath = "/auth/signin"

// fetchFailed 後端 401 時登出，其餘錯誤在原頁面顯示訊息
func fetchFailed(c echo.Context, d *handler.Deps, err error, name, title, msg string, data any) error {
	if d.Unauthorized(c, err) {
		return c.Redirect(http.StatusSeeOther, signinPath)
	}
	log.Warn().Err(err).Str("page", name).Msg(msg)
	return handler.Render(c, http.StatusOK, name, title, view.ErrorFlash(msg), data)
}

// actionFailed 表單送出失敗，訊息優先取後端回傳
func actionFailed(c echo.Context, err error, fallback string) *view.Flash {
	log.Warn().Err(err).Str("path", c.Path()).Msg(fallback)
	return view.ErrorFlash(backend.MessageOf(err, fallback))
}

func token(c echo.Context) string {
	return middleware.SessionFrom(c).AuthToken()
}

// splitList "a, b,,a" -> [a b]
func splitList(values ...string) []string {
	out := []string{}
	for _, v := range values {
		out = append(out, strutil.SplitAndTrim(v, ",")...)
	}
	return slice.Unique(slice.Filter(out, func(_ int, s string) bool { return s != "" }))
}

// HomeHandler 已登入時導向 dashboard
func HomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		if middleware.SessionFrom(c).IsLoggedIn {
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return handler.Render(c, http.StatusOK, "landing.html", "", nil, nil)
	}
}

func AboutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return handler.Render(c, http.StatusOK, "about.html", "About", nil, nil)
	}
}
