// File: internal/handler/pages/leaderboard.go
package pages

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"wakatimer/internal/cache"
	"wakatimer/internal/handler"
	"wakatimer/internal/model"
	"wakatimer/internal/view"
)

const leaderboardCachePrefix = "leaderboard:"

var leaderboardParams = []string{"language", "page", "country_code"}

// leaderboardQuery 只保留後端認得的參數，作為快取 key 的一部分
func leaderboardQuery(c echo.Context) url.Values {
	q := url.Values{}
	for key, values := range c.QueryParams() {
		if slice.Contain(leaderboardParams, key) && len(values) > 0 && values[0] != "" {
			q.Set(key, values[0])
		}
	}
	return q
}

// LeaderboardHandler 後端結果快取 LEADERBOARD_CACHE_TTL
func LeaderboardHandler(d *handler.Deps) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		q := leaderboardQuery(c)
		key := leaderboardCachePrefix + q.Encode()
		page, _ := strconv.Atoi(q.Get("page"))
		data := view.Leaderboard{Language: q.Get("language"), Page: page}

		var res model.LeadersResponse
		err := cache.GetJSON(ctx, d.Cache, key, &res)
		if err == nil {
			data.Leaders = res
			return handler.Render(c, http.StatusOK, "leaderboards.html", "Leaderboards", nil, data)
		}
		if !cache.IsMiss(err) {
			log.Warn().Err(err).Str("key", key).Msg("leaderboard cache read")
		}

		res, err = d.Backend.Leaders(ctx, q)
		if err != nil {
			log.Warn().Err(err).Msg("fetch leaderboard")
			return handler.Render(c, http.StatusOK, "leaderboards.html", "Leaderboards",
				view.ErrorFlash("There was an error fetching leaderboard data..."), data)
		}
		if err := cache.SetJSON(ctx, d.Cache, key, res, d.Config.UI.LeaderboardCacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("leaderboard cache write")
		}
		data.Leaders = res
		return handler.Render(c, http.StatusOK, "leaderboards.html", "Leaderboards", nil, data)
	}
}
