package usecase_test

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	carts          repo.CartRepository
	cartItems      repo.CartItemRepository
	variants       repo.VariantRepository
	orders         repo.OrderRepository
	orderItems     repo.OrderItemRepository
	orderAddresses repo.OrderAddressRepository
	orderHistory   repo.OrderStatusHistoryRepository
}

func (r *TxReposMock) Carts() repo.CartRepository                      { return r.carts }
func (r *TxReposMock) CartItems() repo.CartItemRepository              { return r.cartItems }
func (r *TxReposMock) Variants() repo.VariantRepository                { return r.variants }
func (r *TxReposMock) Orders() repo.OrderRepository                    { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository            { return r.orderItems }
func (r *TxReposMock) OrderAddresses() repo.OrderAddressRepository     { return r.orderAddresses }
func (r *TxReposMock) OrderHistory() repo.OrderStatusHistoryRepository { return r.orderHistory }

// =====================
// Repository mocks
// =====================

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) Create(ctx context.Context, cart model.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *CartRepoMock) FindByID(ctx context.Context, cartID string) (model.Cart, error) {
	args := m.Called(ctx, cartID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) FindActiveByUserID(ctx context.Context, userID int64) (model.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Cart)
	return c, args.Error(1)
}

func (m *CartRepoMock) ClaimOwnership(ctx context.Context, cartID string, userID int64) error {
	args := m.Called(ctx, cartID, userID)
	return args.Error(0)
}

func (m *CartRepoMock) Touch(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

func (m *CartRepoMock) Deactivate(ctx context.Context, cartID string) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

type CartItemRepoMock struct{ mock.Mock }

func (m *CartItemRepoMock) ListByCartID(ctx context.Context, cartID string) ([]model.CartItem, error) {
	args := m.Called(ctx, cartID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartItemRepoMock) FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error) {
	args := m.Called(ctx, cartItemID)
	it, _ := args.Get(0).(model.CartItem)
	return it, args.Error(1)
}

func (m *CartItemRepoMock) UpsertByCartAndVariant(ctx context.Context, cartID string, variantID int64, addQty int64) error {
	args := m.Called(ctx, cartID, variantID, addQty)
	return args.Error(0)
}

func (m *CartItemRepoMock) UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error {
	args := m.Called(ctx, cartItemID, qty)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByID(ctx context.Context, cartItemID int64) error {
	args := m.Called(ctx, cartItemID)
	return args.Error(0)
}

func (m *CartItemRepoMock) DeleteByIDs(ctx context.Context, cartID string, cartItemIDs []int64) (int64, error) {
	args := m.Called(ctx, cartID, cartItemIDs)
	return args.Get(0).(int64), args.Error(1)
}

type VariantRepoMock struct{ mock.Mock }

func (m *VariantRepoMock) FindByID(ctx context.Context, variantID int64) (model.ProductVariant, error) {
	args := m.Called(ctx, variantID)
	v, _ := args.Get(0).(model.ProductVariant)
	return v, args.Error(1)
}

func (m *VariantRepoMock) DecreaseStockIfEnough(ctx context.Context, variantID int64, qty int64) (bool, error) {
	args := m.Called(ctx, variantID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *VariantRepoMock) IncreaseStock(ctx context.Context, variantID int64, qty int64) error {
	args := m.Called(ctx, variantID, qty)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) FindByIDAndUser(ctx context.Context, orderID string, userID int64) (model.Order, error) {
	args := m.Called(ctx, orderID, userID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) UpdateStatusIfCurrent(ctx context.Context, orderID string, from, to model.OrderStatus, cancelReason string) (bool, error) {
	args := m.Called(ctx, orderID, from, to, cancelReason)
	return args.Bool(0), args.Error(1)
}

func (m *OrderRepoMock) ListAdmin(ctx context.Context, f repo.AdminOrderListFilter) ([]model.Order, int64, error) {
	args := m.Called(ctx, f)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Get(1).(int64), args.Error(2)
}

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID string, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

type OrderAddressRepoMock struct{ mock.Mock }

func (m *OrderAddressRepoMock) Create(ctx context.Context, address model.OrderAddress) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func (m *OrderAddressRepoMock) FindByOrderID(ctx context.Context, orderID string) (model.OrderAddress, error) {
	args := m.Called(ctx, orderID)
	a, _ := args.Get(0).(model.OrderAddress)
	return a, args.Error(1)
}

type OrderHistoryRepoMock struct{ mock.Mock }

func (m *OrderHistoryRepoMock) Create(ctx context.Context, h model.OrderStatusHistory) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *OrderHistoryRepoMock) ListByOrderID(ctx context.Context, orderID string) ([]model.OrderStatusHistory, error) {
	args := m.Called(ctx, orderID)
	entries, _ := args.Get(0).([]model.OrderStatusHistory)
	return entries, args.Error(1)
}

type PaymentProcessorMock struct{ mock.Mock }

func (m *PaymentProcessorMock) OrderStatusChanged(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}
