package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// トランザクション内で使う約束
type TxRepos interface {
	Carts() CartRepository
	CartItems() CartItemRepository
	Variants() VariantRepository
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	OrderAddresses() OrderAddressRepository
	OrderHistory() OrderStatusHistoryRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// fnがerrorを返したら全部ロールバックされる。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
