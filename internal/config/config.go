// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const minSecretLength = 32

// Config 集中管理服務所有環境變數設定
type Config struct {
	HTTPAddr  string        `env:"HTTP_ADDR" envDefault:":8080"`
	PublicURL string        `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`
	LogLevel  string        `env:"LOG_LEVEL" envDefault:"info"`
	API       APIConfig     `envPrefix:""`
	Session   SessionConfig `envPrefix:""`
	GitHub    GitHubConfig  `envPrefix:"GITHUB_"`
	DB        DBConfig      `envPrefix:""`
	Redis     RedisConfig   `envPrefix:"REDIS_"`
	UI        UIConfig      `envPrefix:""`

	WorkerCount int `env:"WORKER_COUNT" envDefault:"1"`
}

type APIConfig struct {
	URL     string        `env:"API_URL"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
}

type SessionConfig struct {
	Secret          string        `env:"AUTH_SECRET"`
	CookieName      string        `env:"SESSION_COOKIE_NAME" envDefault:"wakatimer-auth-session"`
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	InsecureCookies bool          `env:"INSECURE_COOKIES" envDefault:"false"`
}

type GitHubConfig struct {
	ClientID    string `env:"CLIENT_ID"`
	RedirectURI string `env:"REDIRECT_URI"`
	Scope       string `env:"SCOPE" envDefault:"read:user user:email"`
}

type DBConfig struct {
	URL string `env:"DATABASE_URL"`
}

// RedisConfig Addr 為空時改用行程內快取
type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type UIConfig struct {
	LeaderboardCacheTTL time.Duration `env:"LEADERBOARD_CACHE_TTL" envDefault:"1h"`
	AvatarURLTemplate   string        `env:"AVATAR_URL_TEMPLATE" envDefault:"api/avatar/{username_hash}.svg"`
	DefaultAvatarURL    string        `env:"DEFAULT_AVATAR_URL" envDefault:"assets/images/unknown.svg"`
}

var (
	loadDotenv = func() error { return godotenv.Load() }
	parseEnv   = func(cfg *Config) error { return env.Parse(cfg) }
)

// Load 讀取 .env（若存在）與環境變數並檢查必要欄位
func Load() (*Config, error) {
	// .env 不存在時忽略
	_ = loadDotenv()

	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查必要設定
func (c *Config) Validate() error {
	var errs []error
	if c.API.URL == "" {
		errs = append(errs, errors.New("環境變數 API_URL 未設定"))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("環境變數 AUTH_SECRET 未設定"))
	} else if len(c.Session.Secret) < minSecretLength {
		errs = append(errs, fmt.Errorf("AUTH_SECRET 長度至少需 %d 個字元", minSecretLength))
	}
	if c.GitHub.ClientID == "" {
		errs = append(errs, errors.New("環境變數 GITHUB_CLIENT_ID 未設定"))
	}
	if c.DB.URL == "" {
		errs = append(errs, errors.New("環境變數 DATABASE_URL 未設定"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("無效的 SESSION_TTL"))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, fmt.Errorf("無效的 WORKER_COUNT: %d", c.WorkerCount))
	}
	return errors.Join(errs...)
}

// GitHubRedirectURI 未設定時預設為 PUBLIC_URL 下的 callback
func (c *Config) GitHubRedirectURI() string {
	if c.GitHub.RedirectURI != "" {
		return c.GitHub.RedirectURI
	}
	return strings.TrimRight(c.PublicURL, "/") + "/api/oauth/callback/github"
}

func (c *Config) SecureCookies() bool {
	return !c.Session.InsecureCookies
}
