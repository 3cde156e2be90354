package repository

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
)

// バリアントはカタログ側の持ち物。ここでは取得と在庫の増減だけを約束する。
type VariantRepository interface {
	FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error)

	// 在庫が足りるときだけ減算（stock = stock - qty WHERE stock >= qty）。
	// 足りなければ false。同時注文の二重販売はここで防ぐ
	DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error)

	// 在庫戻し（キャンセルなど）
	IncreaseStock(ctx context.Context, variantID int64, qty int64) error
}
