package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Purchases() PurchaseRepository
	PurchaseItems() PurchaseItemRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// ヘッダと明細は同じトランザクションで書く（孤児ヘッダを作らない）。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
