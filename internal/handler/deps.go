// File: internal/handler/deps.go
package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/authflow"
	"wakatimer/internal/backend"
	"wakatimer/internal/cache"
	"wakatimer/internal/config"
	"wakatimer/internal/database"
	"wakatimer/internal/events"
	"wakatimer/internal/middleware"
	"wakatimer/internal/model"
	"wakatimer/internal/oauth"
	"wakatimer/internal/session"
	"wakatimer/internal/view"
)

// Deps 所有 handler 共用的依賴
type Deps struct {
	Config   *config.Config
	DB       database.DB
	Cache    cache.Cache
	Backend  *backend.Client
	Sessions *session.Manager
	Flows    *authflow.Store
	GitHub   *oauth.GitHub
	Events   *events.Bus
}

// Page 帶入目前 session 的頁面資料
func Page(c echo.Context, title string, flash *view.Flash, data any) view.Page {
	return view.Page{Title: title, Session: middleware.SessionFrom(c), Flash: flash, Data: data}
}

// Render 以指定狀態碼輸出頁面
func Render(c echo.Context, status int, name, title string, flash *view.Flash, data any) error {
	return c.Render(status, name, Page(c, title, flash, data))
}

// RecordAuth 發佈登入事件，err 為 nil 代表成功
func (d *Deps) RecordAuth(c echo.Context, method, email string, data model.SessionData, err error) {
	if d.Events == nil {
		return
	}
	e := model.AuthEvent{
		ID:        uuid.New(),
		UserID:    data.User.ID,
		Email:     email,
		Method:    method,
		Success:   err == nil,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
	if e.Email == "" {
		e.Email = data.User.Email
	}
	if err != nil {
		e.Message = backend.MessageOf(err, err.Error())
	}
	d.Events.PublishAuth(e)
}

// StartSession 建立 session 並補上預設頭像
func (d *Deps) StartSession(c echo.Context, data model.SessionData) (model.SessionData, error) {
	if data.User.Avatar == "" && d.Config != nil {
		data.User.Avatar = view.AvatarURL(d.Config.UI.AvatarURLTemplate, d.Config.UI.DefaultAvatarURL, "", data.User.Email)
	}
	return d.Sessions.Create(c.Response(), c.Request(), data)
}

// Unauthorized 後端回 401 時清除 session 並導向登入頁
func (d *Deps) Unauthorized(c echo.Context, err error) bool {
	if backend.StatusOf(err) != http.StatusUnauthorized {
		return false
	}
	if derr := d.Sessions.Destroy(c.Response(), c.Request()); derr != nil {
		log.Warn().Err(derr).Msg("destroy session")
	}
	return true
}
