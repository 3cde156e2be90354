package usecase

import (
	"fmt"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
)

// StockGuard は在庫と販売可否のルールをまとめたもの。
// カート追加・数量変更・チェックアウトの全部がここを通る。
// バリアントの存在チェックは呼び出し側がrepoのErrNotFoundで行う。
type StockGuard struct{}

// currentQty は既にカートに入っている数量、requestQty は今回足したい数量。
// チェックアウトでは currentQty=0 / requestQty=注文数量 で呼ぶ。
func (StockGuard) Check(v model.ProductVariant, currentQty, requestQty int64) error {
	if !v.IsActive {
		return NewBusinessRule(fmt.Sprintf("product %q is not available for sale", v.ProductName))
	}
	if v.Stock <= 0 {
		return NewBusinessRule(fmt.Sprintf("product %q is out of stock", v.ProductName))
	}
	if currentQty+requestQty > v.Stock {
		return NewBusinessRule(fmt.Sprintf(
			"insufficient stock for %q: in cart %d, requested %d, available %d",
			v.ProductName, currentQty, requestQty, v.Stock,
		))
	}
	return nil
}
