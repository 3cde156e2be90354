package repository

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"

	"gorm.io/gorm"
)

// 追記専用。UpdateもDeleteも実装しない。
type OrderHistoryGormRepository struct {
	db *gorm.DB
}

func NewOrderHistoryGormRepository(db *gorm.DB) *OrderHistoryGormRepository {
	return &OrderHistoryGormRepository{db: db}
}

func (r *OrderHistoryGormRepository) Create(ctx context.Context, h model.OrderStatusHistory) error {
	return r.db.WithContext(ctx).Create(&h).Error
}

func (r *OrderHistoryGormRepository) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error) {
	var entries []model.OrderStatusHistory

	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id asc").
		Find(&entries).Error; err != nil {
		return []model.OrderStatusHistory{}, err
	}

	return entries, nil
}
