// File: internal/handler/auth/github.go
package auth

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/handler"
	"wakatimer/internal/model"
)

const githubErrorMessage = "An unexpected error occurred while logging in using github. Try again later. If this persists, contact support"

var errMissingCode = errors.New("state and code are required")

// GitHubRedirectHandler 保存 nonce 後導向 GitHub authorize
// @Summary     GitHub login
// @Tags        oauth
// @Success     302
// @Router      /oauth/github [get]
func GitHubRedirectHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		nonce, err := d.Flows.NewNonce(c.Request().Context())
		if err != nil {
			log.Error().Err(err).Msg("save oauth nonce")
			return githubFailure(c)
		}
		target, _, err := d.GitHub.AuthorizeURL(nonce)
		if err != nil {
			log.Error().Err(err).Msg("build authorize url")
			return githubFailure(c)
		}
		return c.Redirect(http.StatusFound, target)
	}
}

// GitHubCallbackHandler 驗證 state 並以 code 向後端換取 session
// @Summary     GitHub callback
// @Tags        oauth
// @Param       state query string true "state"
// @Param       code  query string true "authorization code"
// @Success     303
// @Router      /oauth/callback/github [get]
func GitHubCallbackHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		state, code := c.QueryParam("state"), c.QueryParam("code")
		if state == "" || code == "" {
			log.Warn().Err(errMissingCode).Msg("github callback")
			return githubFailure(c)
		}
		parsed, err := d.GitHub.ValidateState(state)
		if err != nil {
			log.Warn().Err(err).Msg("github callback state")
			return githubFailure(c)
		}
		if err := d.Flows.ConsumeNonce(ctx, parsed.Nonce); err != nil {
			log.Warn().Err(err).Msg("github callback nonce")
			return githubFailure(c)
		}

		res, err := d.Backend.GitHubOAuth(ctx, code)
		d.RecordAuth(c, model.AuthMethodGitHub, "", res.Data, err)
		if err != nil {
			log.Warn().Err(err).Msg("github oauth exchange")
			return githubFailure(c)
		}
		if _, err := d.StartSession(c, res.Data); err != nil {
			log.Error().Err(err).Msg("create session")
			return githubFailure(c)
		}
		return c.Redirect(http.StatusSeeOther, dashboardPath)
	}
}

func githubFailure(c echo.Context) error {
	q := url.Values{}
	q.Set("error", githubErrorMessage)
	return c.Redirect(http.StatusSeeOther, "/auth/signin?"+q.Encode())
}
