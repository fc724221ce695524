// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"wakatimer/internal/handler"
	"wakatimer/internal/handler/auth"
	"wakatimer/internal/handler/pages"
	"wakatimer/internal/middleware"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d *handler.Deps) {
	e.Use(middleware.LoadSession(d.Sessions))

	// 公開頁面
	e.GET("/", pages.HomeHandler())
	e.GET("/about", pages.AboutHandler())
	e.GET("/dashboard/leaderboards", pages.LeaderboardHandler(d))

	// 登入流程
	a := e.Group("/auth")
	a.GET("/signin", auth.SigninPage())
	a.POST("/signin", auth.SigninHandler(d))
	a.GET("/signup", auth.SignupPage())
	a.POST("/signup", auth.SignupHandler(d))
	a.POST("/otp", auth.OTPStartHandler(d))
	a.POST("/otp/verify", auth.OTPVerifyHandler(d))
	a.GET("/forgot-password", auth.ForgotPasswordPage())
	a.POST("/forgot-password", auth.ForgotPasswordHandler(d))
	a.GET("/reset-password", auth.ResetPasswordPage())
	a.POST("/reset-password", auth.ResetPasswordHandler(d))

	// 需登入的頁面；middleware 掛在各路由上，避免 group 吃掉 404
	rs := middleware.RequireSession
	e.GET("/dashboard", pages.DashboardHandler(d), rs)
	e.GET("/projects/:id", pages.ProjectHandler(d), rs)
	e.GET("/plugins/status", pages.PluginsHandler(d), rs)

	e.GET("/settings", pages.SettingsHandler(d), rs)
	e.POST("/settings/profile", pages.UpdateProfileHandler(d), rs)
	e.POST("/settings/preferences", pages.UpdatePreferenceHandler(d), rs)
	e.POST("/settings/api-key/refresh", pages.RefreshAPIKeyHandler(d), rs)
	e.POST("/settings/wakatime", pages.WakatimeHandler(d), rs)

	e.GET("/clients", pages.ClientsHandler(d), rs)
	e.POST("/clients", pages.SaveClientHandler(d), rs)
	e.POST("/clients/:id", pages.SaveClientHandler(d), rs)
	e.POST("/clients/:id/delete", pages.DeleteClientHandler(d), rs)

	e.GET("/invoices", pages.InvoicesHandler(d), rs)
	e.POST("/invoices", pages.CreateInvoiceHandler(d), rs)
	e.POST("/invoices/:id/delete", pages.DeleteInvoiceHandler(d), rs)

	e.GET("/goals", pages.GoalsHandler(d), rs)
	e.POST("/goals", pages.CreateGoalHandler(d), rs)
	e.POST("/goals/:id/delete", pages.DeleteGoalHandler(d), rs)

	// JSON API
	api := e.Group("/api")
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))
	api.GET("/avatar-preview", handler.AvatarPreviewHandler(d.Config.UI))
	api.GET("/pkce", handler.PKCEHandler())

	api.GET("/session", auth.GetSessionHandler(d))
	api.POST("/session", auth.CreateSessionHandler(d))
	api.PUT("/session", auth.UpdateSessionHandler(d))
	api.DELETE("/session", auth.DeleteSessionHandler(d))
	api.POST("/session/signup", auth.SignupSessionHandler(d))

	api.GET("/oauth/github", auth.GitHubRedirectHandler(d))
	api.GET("/oauth/callback/github", auth.GitHubCallbackHandler(d))

	api.Any("/backend/*", handler.ProxyHandler(d.Backend), middleware.RequireAPISession)
}
