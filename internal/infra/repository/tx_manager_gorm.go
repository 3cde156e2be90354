package repository

import (
	"context"

	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	carts          repo.CartRepository
	cartItems      repo.CartItemRepository
	variants       repo.VariantRepository
	orders         repo.OrderRepository
	orderItems     repo.OrderItemRepository
	orderAddresses repo.OrderAddressRepository
	orderHistory   repo.OrderStatusHistoryRepository
}

func (r *txReposGorm) Carts() repo.CartRepository                      { return r.carts }
func (r *txReposGorm) CartItems() repo.CartItemRepository              { return r.cartItems }
func (r *txReposGorm) Variants() repo.VariantRepository                { return r.variants }
func (r *txReposGorm) Orders() repo.OrderRepository                    { return r.orders }
func (r *txReposGorm) OrderItems() repo.OrderItemRepository            { return r.orderItems }
func (r *txReposGorm) OrderAddresses() repo.OrderAddressRepository     { return r.orderAddresses }
func (r *txReposGorm) OrderHistory() repo.OrderStatusHistoryRepository { return r.orderHistory }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			carts:          NewCartGormRepository(tx),
			cartItems:      NewCartItemGormRepository(tx),
			variants:       NewVariantGormRepository(tx),
			orders:         NewOrderGormRepository(tx),
			orderItems:     NewOrderItemGormRepository(tx),
			orderAddresses: NewOrderAddressGormRepository(tx),
			orderHistory:   NewOrderHistoryGormRepository(tx),
		}
		return fn(r)
	})
}
