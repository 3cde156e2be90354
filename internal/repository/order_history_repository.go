package repository

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
)

// ステータス履歴は追記専用。UpdateもDeleteも約束しない。
type OrderStatusHistoryRepository interface {
	Create(ctx context.Context, h model.OrderStatusHistory) error
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error)
}
