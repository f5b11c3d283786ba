package config

import (
	"strings"

	env "github.com/Netflix/go-env"
)

// defaultAllowedOrigins はALLOWED_ORIGINS未設定時の許可オリジン一覧。
// 開発用フロントエンド（Vite）とバックエンド自身のオリジンを許可する。
var defaultAllowedOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
}

// Config はサーバーの環境変数設定
type Config struct {
	Port           int    `env:"PORT,default=3000"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	LogLevel       string `env:"LOG_LEVEL,default=info"`
	LogFormat      string `env:"LOG_FORMAT,default=console"`
	StaticDir      string `env:"STATIC_DIR"`
}

// Load は環境変数からConfigを読み込む
func Load() (Config, error) {
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Origins はCORSで許可するオリジンの一覧を返す。
// ALLOWED_ORIGINSはカンマ区切りで、空の場合はデフォルトの許可リストを使う。
func (c Config) Origins() []string {
	if strings.TrimSpace(c.AllowedOrigins) == "" {
		return defaultAllowedOrigins
	}

	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
