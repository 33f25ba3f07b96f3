package model

// 購入明細。ユニークな商品ごとに1行、ヘッダと同じトランザクションで作成。
type PurchaseItem struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID int64 `gorm:"not null;index" json:"purchase_id"`
	ProductID  int64 `gorm:"not null;index" json:"product_id"`
	Quantity   int64 `gorm:"not null" json:"quantity"`
}
