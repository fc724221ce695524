// File: internal/handler/pages/settings.go
package pages

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/api"
	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/model"
	"wakatimer/internal/store"
	"wakatimer/internal/validation"
	"wakatimer/internal/view"
)

const (
	wakatimeAPIURL    = "https://api.wakatime.com/api/v1"
	signInHistorySize = 20
)

var listAuthEvents = store.ListAuthEvents

func settingsURL(tab string) string {
	return "/settings?tab=" + tab
}

// loadSettings 依分頁向後端或資料庫取資料
func loadSettings(c echo.Context, d *handler.Deps, tab string) (view.Settings, error) {
	sess := middleware.SessionFrom(c)
	ctx := c.Request().Context()
	data := view.Settings{
		Tab:            tab,
		Tabs:           view.SettingsTabs,
		HasWakatime:    sess.User.HasWakatimeIntegration,
		AvatarTemplate: d.Config.UI.AvatarURLTemplate,
	}
	var err error
	switch tab {
	case "profile", "preferences":
		data.Profile, err = d.Backend.Profile(ctx, sess.AuthToken())
	case "api-key":
		var key model.APIKey
		key, err = d.Backend.APIKey(ctx, sess.AuthToken())
		data.APIKey = key.APIKey
	case "security":
		data.History, err = listAuthEvents(ctx, d.DB, sess.User.ID, sess.User.Email, signInHistorySize)
	}
	return data, err
}

// SettingsHandler 未知分頁回到 profile
func SettingsHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		tab := view.SelectTab(c.QueryParam("tab"))
		data, err := loadSettings(c, d, tab)
		if err != nil {
			return fetchFailed(c, d, err, "settings.html", "Settings", "Error fetching settings", data)
		}
		var flash *view.Flash
		if msg := c.QueryParam("message"); msg != "" {
			flash = &view.Flash{Title: "Success", Description: msg, Variant: view.VariantSuccess}
		}
		return handler.Render(c, http.StatusOK, "settings.html", "Settings", flash, data)
	}
}

func renderSettings(c echo.Context, status int, tab string, flash *view.Flash, data view.Settings) error {
	data.Tab = tab
	data.Tabs = view.SettingsTabs
	return handler.Render(c, status, "settings.html", "Settings", flash, data)
}

// UpdateProfileHandler 驗證後 PUT /api/v1/profile
func UpdateProfileHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.ProfileForm
		if err := c.Bind(&form); err != nil {
			return renderSettings(c, http.StatusBadRequest, "profile", view.ErrorFlash("Invalid profile data"), view.Settings{})
		}
		draft := view.Settings{Profile: model.Profile{
			Name:                 form.Name,
			Username:             form.Username,
			Bio:                  form.Bio,
			Location:             form.Location,
			GithubHandle:         form.GithubHandle,
			TwitterHandle:        form.TwitterHandle,
			LinkedInHandle:       form.LinkedInHandle,
			HeartbeatsTimeoutSec: form.KeyStrokeTimeout,
		}}
		if err := c.Validate(&form); err != nil {
			return renderSettings(c, http.StatusBadRequest, "profile", view.ErrorFlash(validation.Message(err)), draft)
		}
		if _, err := d.Backend.UpdateProfile(c.Request().Context(), token(c), form.Fields()); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderSettings(c, http.StatusOK, "profile", actionFailed(c, err, "Error updating profile"), draft)
		}
		return c.Redirect(http.StatusSeeOther, settingsURL("profile")+"&message=Profile+updated")
	}
}

// preferenceValue heartbeats_timeout_sec 為整數，其餘為布林
func preferenceValue(form api.PreferenceForm) (any, bool) {
	if form.Field == "heartbeats_timeout_sec" {
		n, err := strconv.Atoi(form.Value)
		return n, err == nil && n >= 120
	}
	switch form.Value {
	case "true", "on", "1":
		return true, true
	case "", "false", "off", "0":
		return false, true
	}
	return nil, false
}

// UpdatePreferenceHandler 一次更新一個偏好
func UpdatePreferenceHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.PreferenceForm
		_ = c.Bind(&form)
		value, ok := preferenceValue(form)
		if err := c.Validate(&form); err != nil || !ok {
			return renderSettings(c, http.StatusBadRequest, "preferences", view.ErrorFlash("Invalid preference"), view.Settings{})
		}
		if _, err := d.Backend.UpdateProfile(c.Request().Context(), token(c), map[string]any{form.Field: value}); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderSettings(c, http.StatusOK, "preferences", actionFailed(c, err, "Error updating preferences"), view.Settings{})
		}
		return c.Redirect(http.StatusSeeOther, settingsURL("preferences"))
	}
}

// RefreshAPIKeyHandler 換發 API key 後直接顯示
func RefreshAPIKeyHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		key, err := d.Backend.RefreshAPIKey(c.Request().Context(), token(c))
		if err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderSettings(c, http.StatusOK, "api-key", actionFailed(c, err, "Error refreshing api key"), view.Settings{})
		}
		return renderSettings(c, http.StatusOK, "api-key",
			&view.Flash{Title: "Success", Description: "API key refreshed", Variant: view.VariantSuccess},
			view.Settings{APIKey: key.APIKey})
	}
}

// WakatimeHandler 切換 WakaTime 整合並同步 session 的 has_wakatime_integration
func WakatimeHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		var form api.WakatimeForm
		_ = c.Bind(&form)
		enabling := !sess.User.HasWakatimeIntegration
		data := view.Settings{HasWakatime: sess.User.HasWakatimeIntegration}
		if err := c.Validate(&form); err != nil || (enabling && form.APIKey == "") {
			return renderSettings(c, http.StatusBadRequest, "integrations", view.ErrorFlash("A valid WakaTime API key is required"), data)
		}
		apiURL := form.APIURL
		if apiURL == "" {
			apiURL = wakatimeAPIURL
		}
		err := d.Backend.UpdateSettings(c.Request().Context(), sess.AuthToken(), map[string]any{
			"action":  "toggle_wakatime",
			"api_url": apiURL,
			"api_key": form.APIKey,
		})
		if err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderSettings(c, http.StatusOK, "integrations", actionFailed(c, err, "Error updating integration"), data)
		}

		sess.User.HasWakatimeIntegration = enabling
		if err := d.Sessions.Save(c.Response(), c.Request(), sess); err != nil {
			log.Error().Err(err).Msg("save session")
		}
		return c.Redirect(http.StatusSeeOther, settingsURL("integrations"))
	}
}
