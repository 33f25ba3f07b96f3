package repository

import (
	"context"

	"techstore/internal/domain/model"
)

type PurchaseRepository interface {
	Create(ctx context.Context, p model.Purchase) (int64, error)
	FindByID(ctx context.Context, purchaseID int64) (model.Purchase, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]model.Purchase, error)
}

type PurchaseItemRepository interface {
	CreateBulk(ctx context.Context, purchaseID int64, items []model.PurchaseItem) error
	ListByPurchaseID(ctx context.Context, purchaseID int64) ([]model.PurchaseItem, error)
}
