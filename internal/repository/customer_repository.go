package repository

import (
	"context"
	"errors"

	"techstore/internal/domain/model"
)

// メール重複を統一
var ErrDuplicateEmail = errors.New("email already registered")

type CustomerRepository interface {
	//新規会員作成
	Create(ctx context.Context, c *model.Customer) error
	//メールから会員を1件取得する。
	FindByEmail(ctx context.Context, email string) (model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)
}
