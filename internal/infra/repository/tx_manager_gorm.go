package repository

import (
	"context"

	repo "techstore/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	purchases     repo.PurchaseRepository
	purchaseItems repo.PurchaseItemRepository
}

func (r *txReposGorm) Purchases() repo.PurchaseRepository         { return r.purchases }
func (r *txReposGorm) PurchaseItems() repo.PurchaseItemRepository { return r.purchaseItems }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// WithinTx はヘッダと明細の書き込みを1トランザクションにまとめる。
// 明細の書き込みが失敗したらヘッダも残さない。
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			purchases:     NewPurchaseGormRepository(tx),
			purchaseItems: NewPurchaseItemGormRepository(tx),
		}
		return fn(r)
	})
}
