package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 購入ヘッダ。チェックアウトごとに1件、作成後は変更しない。
// 支払い情報は保存のみで決済ゲートウェイには送らない。
type Purchase struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"purchase_id"`
	CustomerID int64 `gorm:"not null;index" json:"customer_id"`

	//配送先
	Street     string `gorm:"type:varchar(255);not null" json:"street"`
	City       string `gorm:"type:varchar(255);not null" json:"city"`
	Province   string `gorm:"type:varchar(100);not null" json:"province"`
	Country    string `gorm:"type:varchar(100);not null" json:"country"`
	PostalCode string `gorm:"type:varchar(20);not null" json:"postal_code"`

	//支払い
	CreditCard   string `gorm:"type:varchar(30);not null" json:"-"`
	CreditExpire string `gorm:"type:varchar(10);not null" json:"-"`
	CreditCVV    string `gorm:"type:varchar(10);not null" json:"-"`

	//金額
	InvoiceAmt   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"invoice_amt"`
	InvoiceTax   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"invoice_tax"`
	InvoiceTotal decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"invoice_total"`

	OrderDate time.Time `gorm:"not null;autoCreateTime" json:"order_date"`
}
