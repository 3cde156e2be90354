package validator

import (
	"strings"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	"github.com/mduy26100/ZTino-Shop-sub000/internal/usecase"
)

// 顧客がリクエストのtargetとして指定できるステータス。
// CONFIRMED / SHIPPING を顧客が直接要求することはできない。
var customerRequestableStatuses = map[model.OrderStatus]struct{}{
	model.OrderStatusCancelled: {},
	model.OrderStatusReturned:  {},
	model.OrderStatusDelivered: {},
}

// 顧客のステータス変更リクエストの入力検証。
// 遷移そのものの可否はusecase側のガードが判定する。
func ValidateCustomerStatusRequest(status, cancelReason, note string) error {
	target, err := model.ToOrderStatus(strings.TrimSpace(status))
	if err != nil {
		return usecase.NewBusinessRule("invalid order status")
	}

	if _, ok := customerRequestableStatuses[target]; !ok {
		return usecase.NewBusinessRule("customers may only request cancellation, return or delivery confirmation")
	}

	// キャンセルは理由必須
	if target == model.OrderStatusCancelled && strings.TrimSpace(cancelReason) == "" {
		return usecase.NewBusinessRule("cancel reason is required when cancelling an order")
	}

	// 返品はメモ必須
	if target == model.OrderStatusReturned && strings.TrimSpace(note) == "" {
		return usecase.NewBusinessRule("a note is required when requesting a return")
	}

	return nil
}
