// File: internal/handler/pages/goals.go
package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wakatimer/internal/api"
	"wakatimer/internal/handler"
	"wakatimer/internal/model"
	"wakatimer/internal/view"
)

const goalTypeCoding = "coding"

func renderGoals(c echo.Context, d *handler.Deps, status int, flash *view.Flash) error {
	goals, err := d.Backend.Goals(c.Request().Context(), token(c))
	if err != nil {
		return fetchFailed(c, d, err, "goals.html", "Goals", "Error fetching goals", view.Goals{})
	}
	return handler.Render(c, status, "goals.html", "Goals", flash, view.Goals{Goals: goals})
}

func GoalsHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		return renderGoals(c, d, http.StatusOK, nil)
	}
}

func goalInput(form api.GoalForm) model.GoalInput {
	return model.GoalInput{
		Projects:        splitList(form.Projects...),
		Languages:       splitList(form.Languages...),
		Editors:         splitList(form.Editors...),
		Categories:      splitList(form.Categories...),
		Seconds:         form.Seconds(),
		Delta:           form.Delta,
		TargetDirection: form.TargetDirection,
		Type:            goalTypeCoding,
	}
}

func CreateGoalHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		var form api.GoalForm
		_ = c.Bind(&form)
		if err := c.Validate(&form); err != nil {
			return renderGoals(c, d, http.StatusBadRequest, view.ErrorFlash("Enter a duration, unit, period and direction"))
		}
		if _, err := d.Backend.CreateGoal(c.Request().Context(), token(c), goalInput(form)); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderGoals(c, d, http.StatusOK, actionFailed(c, err, "Error creating goal"))
		}
		return c.Redirect(http.StatusSeeOther, "/goals")
	}
}

func DeleteGoalHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := d.Backend.DeleteGoal(c.Request().Context(), token(c), c.Param("id")); err != nil {
			if d.Unauthorized(c, err) {
				return c.Redirect(http.StatusSeeOther, signinPath)
			}
			return renderGoals(c, d, http.StatusOK, actionFailed(c, err, "Error deleting goal"))
		}
		return c.Redirect(http.StatusSeeOther, "/goals")
	}
}
