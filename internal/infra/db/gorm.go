package db

import (
	"fmt"

	"techstore/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect はDBに接続して *gorm.DB を返す。
func Connect(cfg config.Config) (*gorm.DB, error) {
	// DATABASE_URL があれば最優先で使う
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User,
			cfg.Postgres.Password, cfg.Postgres.DB, cfg.Postgres.SSLMode,
		)
	}

	// TranslateError: uniqueIndex違反を gorm.ErrDuplicatedKey にする
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}
