package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "wakatimer/docs" // 引入 swag 產出的 docs

	"wakatimer/internal/authflow"
	"wakatimer/internal/backend"
	"wakatimer/internal/cache"
	"wakatimer/internal/config"
	"wakatimer/internal/database"
	"wakatimer/internal/events"
	"wakatimer/internal/handler"
	"wakatimer/internal/middleware"
	"wakatimer/internal/oauth"
	"wakatimer/internal/router"
	"wakatimer/internal/session"
	"wakatimer/internal/validation"
	"wakatimer/internal/view"
	"wakatimer/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// 以下變數為測試注入點
var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newCache        = cache.New
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	startServer     = serve
)

// serve 啟動 HTTP 服務，ctx 結束時優雅關閉
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// newEcho 組裝 renderer、validator 與中介層
func newEcho(d *handler.Deps) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("模板載入失敗: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = validation.New()
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())

	router.Setup(e, d)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e, nil
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogger(cfg.LogLevel)

	db, err := newPgxPool(ctx, cfg.DB.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	kv, err := newCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer kv.Close()

	if err := runMigrationsFn(cfg.DB.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	wp := newWorkerPool(cfg.WorkerCount)
	defer wp.Stop()

	bus := events.NewBus()
	defer bus.Close()
	recorder := events.NewAuthRecorder(bus, wp, db)
	defer recorder.Close()

	sessions, err := session.NewManager(cfg.Session.Secret, cfg.Session.CookieName, cfg.Session.TTL, cfg.SecureCookies())
	if err != nil {
		return fmt.Errorf("session 初始化失敗: %w", err)
	}

	e, err := newEcho(&handler.Deps{
		Config:   cfg,
		DB:       db,
		Cache:    kv,
		Backend:  backend.New(cfg.API.URL, cfg.API.Timeout),
		Sessions: sessions,
		Flows:    authflow.NewStore(kv),
		GitHub:   oauth.NewGitHub(cfg.GitHub.ClientID, cfg.GitHubRedirectURI(), cfg.GitHub.Scope),
		Events:   bus,
	})
	if err != nil {
		return err
	}

	log.Info().Str("addr", cfg.HTTPAddr).Str("api", cfg.API.URL).Msg("service starting")
	return startServer(ctx, e, cfg.HTTPAddr)
}
