// File: internal/handler/ping.go
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wakatimer/internal/api"
	"wakatimer/internal/cache"
	"wakatimer/internal/database"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與快取是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if err := db.Ping(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := c.Set(ctx.Request().Context(), "ping", "pong", time.Minute).Err(); err != nil {
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
