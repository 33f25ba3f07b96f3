package repository

import (
	"context"
	"errors"

	"techstore/internal/domain/model"
	repo "techstore/internal/repository"

	"gorm.io/gorm"
)

type PurchaseGormRepository struct {
	db *gorm.DB
}

func NewPurchaseGormRepository(db *gorm.DB) *PurchaseGormRepository {
	return &PurchaseGormRepository{db: db}
}

func (r *PurchaseGormRepository) Create(ctx context.Context, p model.Purchase) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *PurchaseGormRepository) FindByID(ctx context.Context, purchaseID int64) (model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).First(&p, purchaseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Purchase{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

func (r *PurchaseGormRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("id desc").
		Find(&purchases).Error
	if err != nil {
		return []model.Purchase{}, err
	}
	return purchases, nil
}
