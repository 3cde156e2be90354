package repository

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	// 同一バリアントは数量加算
	UpsertByCartAndVariant(ctx context.Context, cartID string, variantID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	// チェックアウトで消費した明細をまとめて削除。削除件数を返す
	DeleteByIDs(ctx context.Context, cartID string, cartItemIDs []int64) (int64, error)
}
