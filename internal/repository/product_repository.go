package repository

import (
	"context"
	"errors"

	"techstore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の取得だけを約束。購入フローから商品は書き換えない。
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	// ユニークなID集合をまとめて引く。存在しないIDは結果に含めない。
	FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
}
