package repository

import (
	"context"
	"errors"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"gorm.io/gorm"
)

type OrderAddressGormRepository struct {
	db *gorm.DB
}

func NewOrderAddressGormRepository(db *gorm.DB) *OrderAddressGormRepository {
	return &OrderAddressGormRepository{db: db}
}

func (r *OrderAddressGormRepository) Create(ctx context.Context, address model.OrderAddress) error {
	return r.db.WithContext(ctx).Create(&address).Error
}

func (r *OrderAddressGormRepository) FindByOrderID(ctx context.Context, orderID string) (model.OrderAddress, error) {
	var a model.OrderAddress

	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&a).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.OrderAddress{}, repo.ErrNotFound
	}
	if err != nil {
		return model.OrderAddress{}, err
	}
	return a, nil
}
