package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderUsecase はチェックアウト（カート→注文の変換）と注文の参照。
type OrderUsecase struct {
	tx    repo.TransactionManager
	guard StockGuard
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CheckoutAddressInput struct {
	RecipientName string
	Phone         string
	Street        string
	Ward          string
	District      string
	City          string
}

type CheckoutInput struct {
	CartID        string
	CartItemIDs   []int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Note          string
	Address       CheckoutAddressInput
}

type CheckoutOutput struct {
	OrderID       string          `json:"order_id"`
	OrderCode     string          `json:"order_code"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentStatus string          `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	Message       string          `json:"message"`
}

type OrderItemOutput struct {
	VariantID   int64           `json:"variant_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	ColorName   string          `json:"color_name"`
	SizeName    string          `json:"size_name"`
	Thumbnail   string          `json:"thumbnail"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int64           `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type OrderHistoryOutput struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	ActorRole string    `json:"actor_role"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderOutput struct {
	ID            string               `json:"id"`
	Code          string               `json:"code"`
	Status        string               `json:"status"`
	PaymentStatus string               `json:"payment_status"`
	PaymentMethod string               `json:"payment_method"`
	SubTotal      decimal.Decimal      `json:"sub_total"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	CreatedAt     time.Time            `json:"created_at"`
	Items         []OrderItemOutput    `json:"items"`
	History       []OrderHistoryOutput `json:"history,omitempty"`
}

// Checkout はカートから注文を作るワークフロー。全手順が1トランザクションで、
// 途中で失敗したらカート・在庫・注文は何も変わらない。
func (u *OrderUsecase) Checkout(ctx context.Context, userID *int64, in CheckoutInput) (CheckoutOutput, error) {
	if in.CartID == "" {
		return CheckoutOutput{}, NewBusinessRule("cart id is required")
	}
	if len(in.CartItemIDs) == 0 {
		return CheckoutOutput{}, NewBusinessRule("no cart items selected")
	}

	var out CheckoutOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 1. カート取得（アクティブのみ）
		cart, err := r.Carts().FindByID(ctx, in.CartID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("cart not found")
		}
		if err != nil {
			return err
		}
		if !cart.IsActive {
			return NewNotFound("cart not found")
		}

		// 2. 所有チェック。未所有カートならこのユーザーのものにする
		if !cart.AccessibleBy(userID) {
			return NewNotFound("cart not found")
		}
		if cart.UserID == nil && userID != nil {
			if err := r.Carts().ClaimOwnership(ctx, cart.ID, *userID); err != nil {
				return err
			}
			cart.UserID = userID
		}

		// 3. 選択された明細を解決。1件でも合わなければ全体を失敗させる
		allItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return err
		}

		byID := lo.KeyBy(allItems, func(it model.CartItem) int64 { return it.ID })
		selected := make([]model.CartItem, 0, len(in.CartItemIDs))
		for _, id := range lo.Uniq(in.CartItemIDs) {
			it, ok := byID[id]
			if !ok {
				continue
			}
			selected = append(selected, it)
		}
		// 重複・不正・他カートのIDが混ざっていたら件数が合わなくなる
		if len(selected) != len(in.CartItemIDs) {
			return NewBusinessRule("some selected items do not belong to this cart")
		}

		// 4. 在庫ガード。注文作成や減算より先に全明細を検証する
		variants := make(map[int64]model.ProductVariant, len(selected))
		for _, it := range selected {
			v, err := r.Variants().FindByID(ctx, it.VariantID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewNotFound("product variant not found")
			}
			if err != nil {
				return err
			}
			if err := u.guard.Check(v, 0, it.Quantity); err != nil {
				return err
			}
			variants[it.VariantID] = v
		}

		// 5. 注文の構築。明細はこの時点のスナップショット
		now := time.Now()
		orderID := uuid.NewString()
		code := model.GenerateOrderCode(now)

		orderItems := make([]model.OrderItem, 0, len(selected))
		subTotal := decimal.Zero
		for _, it := range selected {
			snap := model.NewOrderItemSnapshot(variants[it.VariantID], it.Quantity)
			snap.CreatedAt = now
			orderItems = append(orderItems, snap)
			subTotal = subTotal.Add(snap.LineTotal)
		}

		order := model.Order{
			ID:             orderID,
			Code:           code,
			UserID:         cart.UserID,
			CustomerName:   in.CustomerName,
			CustomerPhone:  in.CustomerPhone,
			CustomerEmail:  in.CustomerEmail,
			SubTotal:       subTotal,
			ShippingFee:    decimal.Zero,
			DiscountAmount: decimal.Zero,
			TaxAmount:      decimal.Zero,
			TotalAmount:    subTotal,
			Status:         model.OrderStatusPending,
			PaymentStatus:  model.PaymentStatusPending,
			PaymentMethod:  model.PaymentMethodCOD,
			Note:           in.Note,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		// 6-7. 注文＋明細＋住所＋初回履歴を保存
		if err := r.Orders().Create(ctx, order); err != nil {
			return err
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return err
		}
		if err := r.OrderAddresses().Create(ctx, model.OrderAddress{
			OrderID:       orderID,
			RecipientName: in.Address.RecipientName,
			Phone:         in.Address.Phone,
			Street:        in.Address.Street,
			Ward:          in.Address.Ward,
			District:      in.Address.District,
			City:          in.Address.City,
			CreatedAt:     now,
		}); err != nil {
			return err
		}
		if err := r.OrderHistory().Create(ctx, model.OrderStatusHistory{
			OrderID:   orderID,
			Status:    model.OrderStatusPending,
			Note:      "Order created",
			ActorID:   userID,
			ActorRole: model.RoleCustomer,
			CreatedAt: now,
		}); err != nil {
			return err
		}

		// 8. 在庫減算（条件付きUPDATE）。検証後に他の注文が先に在庫を
		// 取っていたらここでfalseになり、全体がロールバックされる
		for _, it := range selected {
			ok, err := r.Variants().DecreaseStockIfEnough(ctx, it.VariantID, it.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				v := variants[it.VariantID]
				return NewBusinessRule(fmt.Sprintf(
					"insufficient stock for %q: requested %d", v.ProductName, it.Quantity,
				))
			}
		}

		// 9. 消費した明細をカートから外す
		if _, err := r.CartItems().DeleteByIDs(ctx, cart.ID, in.CartItemIDs); err != nil {
			return err
		}
		if err := r.Carts().Touch(ctx, cart.ID); err != nil {
			return err
		}

		// 所有カートが空になったら論理削除。ゲストカートは残す
		if cart.UserID != nil && len(allItems) == len(selected) {
			if err := r.Carts().Deactivate(ctx, cart.ID); err != nil {
				return err
			}
		}

		out = CheckoutOutput{
			OrderID:       orderID,
			OrderCode:     code,
			TotalAmount:   order.TotalAmount,
			Status:        string(order.Status),
			PaymentStatus: string(order.PaymentStatus),
			PaymentMethod: string(order.PaymentMethod),
			Message:       fmt.Sprintf("Order %s has been placed successfully", code),
		}
		return nil
	})

	if err != nil {
		return CheckoutOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64, page, limit int) ([]OrderOutput, int64, error) {
	if userID <= 0 {
		return []OrderOutput{}, 0, NewUnauthorized("unauthorized")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var outs []OrderOutput
	var total int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, cnt, err := r.Orders().ListByUserID(ctx, userID, page, limit)
		if err != nil {
			return err
		}
		total = cnt

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}
			outs = append(outs, toOrderOutput(o, items, nil))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, 0, err
	}
	return outs, total, nil
}

func (u *OrderUsecase) GetMyOrderDetail(ctx context.Context, userID int64, orderID string) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewUnauthorized("unauthorized")
	}
	if orderID == "" {
		return OrderOutput{}, NewBusinessRule("order id is required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByIDAndUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("order not found")
		}
		if err != nil {
			return err
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		history, err := r.OrderHistory().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		out = toOrderOutput(o, items, history)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem, history []model.OrderStatusHistory) OrderOutput {
	return OrderOutput{
		ID:            o.ID,
		Code:          o.Code,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		SubTotal:      o.SubTotal,
		TotalAmount:   o.TotalAmount,
		CreatedAt:     o.CreatedAt,
		Items: lo.Map(items, func(it model.OrderItem, _ int) OrderItemOutput {
			return OrderItemOutput{
				VariantID:   it.VariantID,
				ProductName: it.ProductName,
				SKU:         it.SKU,
				ColorName:   it.ColorName,
				SizeName:    it.SizeName,
				Thumbnail:   it.Thumbnail,
				UnitPrice:   it.UnitPrice,
				Quantity:    it.Quantity,
				LineTotal:   it.LineTotal,
			}
		}),
		History: lo.Map(history, func(h model.OrderStatusHistory, _ int) OrderHistoryOutput {
			return OrderHistoryOutput{
				Status:    string(h.Status),
				Note:      h.Note,
				ActorRole: string(h.ActorRole),
				CreatedAt: h.CreatedAt,
			}
		}),
	}
}
