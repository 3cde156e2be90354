package repository

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
)

type CartRepository interface {
	Create(ctx context.Context, cart model.Cart) error
	FindByID(ctx context.Context, cartID string) (model.Cart, error)
	// ユーザーのアクティブなカートを1件取得
	FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error)
	// 未所有カートをユーザーのものにする
	ClaimOwnership(ctx context.Context, cartID string, userID int64) error
	// updated_atだけ進める
	Touch(ctx context.Context, cartID string) error
	// 論理削除（is_active=false）
	Deactivate(ctx context.Context, cartID string) error
}
