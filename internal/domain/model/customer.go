package model

import "time"

// 会員。ログインでセッションに載り、購入フローからは読み取りのみ。
type Customer struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"customer_id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string    `gorm:"type:varchar(255);not null" json:"last_name"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
