package repository

import (
	"context"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
)

// 管理者用の注文一覧の絞り込み条件
type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// 他人の注文は存在しない扱いにするため、所有者込みで引く
	FindByIDAndUser(ctx context.Context, orderID string, userID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)

	// 現在ステータスが from のときだけ to に更新する（compare-and-swap）。
	// 競合して書けなかった場合は false
	UpdateStatusIfCurrent(ctx context.Context, orderID string, from, to model.OrderStatus, cancelReason string) (bool, error)

	// 管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error)
}

type OrderAddressRepository interface {
	Create(ctx context.Context, address model.OrderAddress) error
	FindByOrderID(ctx context.Context, orderID string) (model.OrderAddress, error)
}
