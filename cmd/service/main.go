// File: cmd/service/main.go
// @title        Wakatimer API
// @version      1.0
// @description  Wakatimer 網頁前端的 session、OAuth 與後端代理 API
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name wakatimer-auth-session
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

var exitFunc = os.Exit

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
