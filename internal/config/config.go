package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Configはアプリ全体の設定
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	HTTP     HTTPServer `envPrefix:"HTTP_"`
	Postgres Postgres   `envPrefix:"POSTGRES_"`

	// あればPostgres設定より優先
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	//セッションcookie
	SessionCookie string        `env:"SESSION_COOKIE" envDefault:"session_id"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	//カートcookie（クライアント保持のCartToken）
	CartCookie string        `env:"CART_COOKIE" envDefault:"cart"`
	CartTTL    time.Duration `env:"CART_TTL" envDefault:"720h"`

	// フロントURL（CORSで使う）
	FrontendURL string `env:"FE_URL" envDefault:"http://localhost:5173"`
}

type HTTPServer struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Postgres struct {
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	DB       string `env:"DB" envDefault:"techstore"`
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     int    `env:"PORT" envDefault:"5432"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

// Loadは環境変数から読む。
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
