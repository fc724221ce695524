// File: internal/handler/pages/plugins.go
package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wakatimer/internal/handler"
	"wakatimer/internal/view"
)

// PluginsHandler 列出回報過的編輯器外掛
func PluginsHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		agents, err := d.Backend.UserAgents(c.Request().Context(), token(c))
		if err != nil {
			return fetchFailed(c, d, err, "plugins.html", "Plugins", "Error fetching plugins", view.Plugins{})
		}
		return handler.Render(c, http.StatusOK, "plugins.html", "Plugins", nil, view.Plugins{Agents: agents})
	}
}
