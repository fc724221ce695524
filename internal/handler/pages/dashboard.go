// File: internal/handler/pages/dashboard.go
package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/period"
	"wakatimer/internal/view"
)

// resolveRange ?period= 優先，其次 start/end，皆無效時為 Last 7 Days
func resolveRange(c echo.Context) (string, string, period.Label) {
	t := now()
	if l := period.Label(c.QueryParam("period")); l.Valid() {
		q := period.BuildQuery(l, t)
		return q.Get("start"), q.Get("end"), l
	}
	start, end := period.Resolve(c.QueryParam("start"), c.QueryParam("end"), t)
	return start, end, period.SelectedLabel(start, end, t)
}

// DashboardHandler 顯示所選期間的 summaries
func DashboardHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		start, end, label := resolveRange(c)
		res, err := d.Backend.Summaries(c.Request().Context(), token(c), start, end, "")
		if err != nil {
			empty := view.Dashboard{Selected: label, Labels: period.Labels, Start: start, End: end}
			return fetchFailed(c, d, err, "dashboard.html", "Dashboard", "Error fetching summaries", empty)
		}
		return handler.Render(c, http.StatusOK, "dashboard.html", "Dashboard", nil, view.NewDashboard(res, label, start, end))
	}
}

// ProjectHandler 單一專案的 summaries 與徽章
func ProjectHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		id := c.Param("id")
		start, end, label := resolveRange(c)
		data := view.Project{
			Name:     id,
			BadgeURL: d.Backend.BadgeURL(sess.User.ID, id, sess.AuthToken()),
		}
		res, err := d.Backend.Summaries(c.Request().Context(), sess.AuthToken(), start, end, id)
		if err != nil {
			data.Dashboard = view.Dashboard{Selected: label, Labels: period.Labels, Start: start, End: end}
			return fetchFailed(c, d, err, "project.html", id, "Error fetching summaries", data)
		}
		data.Dashboard = view.NewDashboard(res, label, start, end)
		return handler.Render(c, http.StatusOK, "project.html", id, nil, data)
	}
}
