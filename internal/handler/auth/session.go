// File: internal/handler/auth/session.go
package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/api"
	"wakatimer/internal/backend"
	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/model"
	"wakatimer/internal/session"
)

// GetSessionHandler 讀取目前 session
// @Summary     Read session
// @Description action=logout 清除 session 並導向首頁；action=user 只回傳使用者
// @Tags        session
// @Produce     json
// @Param       action query string false "logout | user"
// @Success     200 {object} model.SessionData
// @Success     303
// @Router      /session [get]
func GetSessionHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		action := c.QueryParam("action")
		if action == "logout" {
			return logout(d, c)
		}
		sess := middleware.SessionFrom(c)
		if !sess.IsLoggedIn {
			return c.JSON(http.StatusOK, session.DefaultSession())
		}
		if action == "user" {
			return c.JSON(http.StatusOK, sess.User)
		}
		return c.JSON(http.StatusOK, sess)
	}
}

// CreateSessionHandler 以 JSON 帳密登入
// @Summary     Login
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       body body api.SessionLoginRequest true "帳號密碼"
// @Success     200 {object} model.SessionData
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /session [post]
func CreateSessionHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SessionLoginRequest
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Error parsing json request"})
		}
		res, err := d.Backend.Login(c.Request().Context(), req.Email, req.Password)
		d.RecordAuth(c, model.AuthMethodPassword, req.Email, res.Data, err)
		if err != nil {
			return c.JSON(backend.StatusOf(err), api.ErrorResponse{Message: backend.MessageOf(err, "Error logging in")})
		}
		sess, err := d.StartSession(c, res.Data)
		if err != nil {
			log.Error().Err(err).Msg("create session")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error logging in"})
		}
		return c.JSON(http.StatusOK, sess)
	}
}

// UpdateSessionHandler 更新 has_wakatime_integration
// @Summary     Update session
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       body body api.SessionUpdateRequest true "integration flag"
// @Success     200 {object} model.SessionData
// @Failure     400 {object} api.ErrorResponse
// @Router      /session [put]
func UpdateSessionHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		if !sess.IsLoggedIn {
			return c.JSON(http.StatusOK, session.DefaultSession())
		}
		var req api.SessionUpdateRequest
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Error parsing json request"})
		}
		sess.User.HasWakatimeIntegration = req.HasWakatimeIntegration
		if err := d.Sessions.Save(c.Response(), c.Request(), sess); err != nil {
			log.Error().Err(err).Msg("save session")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error saving session"})
		}
		return c.JSON(http.StatusOK, sess)
	}
}

// DeleteSessionHandler 登出
// @Summary     Logout
// @Tags        session
// @Success     303
// @Router      /session [delete]
func DeleteSessionHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		return logout(d, c)
	}
}

func logout(d *handler.Deps, c echo.Context) error {
	if err := d.Sessions.Destroy(c.Response(), c.Request()); err != nil {
		log.Warn().Err(err).Msg("destroy session")
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// SignupSessionHandler 以 JSON 註冊，密碼不一致時不呼叫後端
// @Summary     Signup
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       body body api.SignupForm true "註冊資料"
// @Success     200 {object} model.SessionData
// @Failure     400 {object} api.ErrorResponse
// @Router      /session/signup [post]
func SignupSessionHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupForm
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Error parsing json request"})
		}
		if !req.PasswordsMatch() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Password mismatch"})
		}
		res, err := d.Backend.Signup(c.Request().Context(), req.Email, req.Password, req.PasswordRepeat)
		d.RecordAuth(c, model.AuthMethodSignup, req.Email, res.Data, err)
		if err != nil {
			return c.JSON(backend.StatusOf(err), api.ErrorResponse{Message: backend.MessageOf(err, "Error signing up")})
		}
		sess, err := d.StartSession(c, res.Data)
		if err != nil {
			log.Error().Err(err).Msg("create session")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Error signing up"})
		}
		return c.JSON(http.StatusOK, sess)
	}
}
