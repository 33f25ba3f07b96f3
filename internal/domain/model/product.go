package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品。購入フローからは読み取り専用。
type Product struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"product_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	//単価
	Cost decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"cost"`

	//商品画像のファイル名
	ImageFilename string `gorm:"type:varchar(255)" json:"image_filename"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
