// File: internal/handler/misc.go
package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/api"
	"wakatimer/internal/backend"
	"wakatimer/internal/config"
	"wakatimer/internal/middleware"
	"wakatimer/internal/oauth"
	"wakatimer/internal/view"
)

// AvatarPreviewHandler 註冊頁即時預覽頭像
// @Summary     Avatar preview
// @Description 依 AVATAR_URL_TEMPLATE 產生頭像網址，缺少欄位時回傳預設頭像
// @Tags        misc
// @Produce     json
// @Param       username query string false "使用者名稱"
// @Param       email    query string false "Email"
// @Success     200 {object} api.AvatarPreviewResponse
// @Router      /avatar-preview [get]
func AvatarPreviewHandler(cfg config.UIConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		url := view.AvatarURL(cfg.AvatarURLTemplate, cfg.DefaultAvatarURL,
			strings.TrimSpace(c.QueryParam("username")), strings.TrimSpace(c.QueryParam("email")))
		return c.JSON(http.StatusOK, api.AvatarPreviewResponse{AvatarURL: url})
	}
}

// PKCEHandler 產生一組新的 PKCE
// @Summary     New PKCE pair
// @Tags        misc
// @Produce     json
// @Success     200 {object} oauth.PKCE
// @Router      /pkce [get]
func PKCEHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, oauth.NewPKCE())
	}
}

// hop-by-hop 以外只轉發這些 header
var forwardedHeaders = []string{"Content-Type", "Cache-Control", "ETag", "Last-Modified"}

// ProxyHandler 將 /api/backend/* 轉發至後端 /api/*，並帶上 session 的 token
// @Summary     Backend proxy
// @Description 需登入；狀態碼、content-type 與 body 原樣回傳
// @Tags        misc
// @Param       path path string true "後端 /api 之後的路徑"
// @Failure     401 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /backend/{path} [get]
func ProxyHandler(client *backend.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		path := "/api/" + strings.TrimPrefix(c.Param("*"), "/")
		req := c.Request()

		var body io.Reader
		if req.Body != nil && req.Method != http.MethodGet && req.Method != http.MethodHead {
			body = req.Body
		}
		resp, err := client.Forward(req.Context(), req.Method, path, req.URL.RawQuery, sess.AuthToken(), req.Header.Get(echo.HeaderContentType), body)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("proxy request failed")
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "backend unavailable"})
		}
		defer resp.Body.Close()

		for _, h := range forwardedHeaders {
			if v := resp.Header.Get(h); v != "" {
				c.Response().Header().Set(h, v)
			}
		}
		c.Response().WriteHeader(resp.StatusCode)
		_, err = io.Copy(c.Response(), resp.Body)
		return err
	}
}
