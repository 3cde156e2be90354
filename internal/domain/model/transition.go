package model

// ステータス遷移表。ロールごとに作って差し替えられるよう、
// グローバル変数ではなく値としてガードに注入する。
type TransitionTable map[OrderStatus][]OrderStatus

// from→to が許可されているか。
func (t TransitionTable) CanTransition(from, to OrderStatus) bool {
	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// fromから遷移できるステータス一覧（無ければ空）。
func (t TransitionTable) AllowedNext(from OrderStatus) []OrderStatus {
	return t[from]
}

// 顧客が自分で行える遷移。CANCELLED / RETURNED は終端。
func CustomerTransitions() TransitionTable {
	return TransitionTable{
		OrderStatusPending:   {OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusCancelled},
		OrderStatusShipping:  {OrderStatusDelivered},
		OrderStatusDelivered: {OrderStatusReturned},
		OrderStatusCancelled: {},
		OrderStatusReturned:  {},
	}
}

// 管理者が行える遷移。
func ManagerTransitions() TransitionTable {
	return TransitionTable{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusShipping, OrderStatusCancelled},
		OrderStatusShipping:  {OrderStatusDelivered},
		OrderStatusDelivered: {OrderStatusReturned},
		OrderStatusCancelled: {},
		OrderStatusReturned:  {},
	}
}
