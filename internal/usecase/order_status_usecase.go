package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// 確定したステータス変化を決済側へ通知する（返金トリガーなど）。
// 通知はコミット後のベストエフォートで、失敗しても注文は巻き戻さない。
type PaymentProcessor interface {
	OrderStatusChanged(ctx context.Context, order model.Order) error
}

// 返品はお届けから7日以内。
const returnWindowDays = 7

// OrderStatusUsecase は顧客によるステータス遷移のガード。
// 遷移表は注入されるので、ロール別の表に差し替えられる。
type OrderStatusUsecase struct {
	tx          repo.TransactionManager
	transitions model.TransitionTable
	payments    PaymentProcessor
	logger      *zap.Logger
}

func NewOrderStatusUsecase(
	tx repo.TransactionManager,
	transitions model.TransitionTable,
	payments PaymentProcessor,
	logger *zap.Logger,
) *OrderStatusUsecase {
	return &OrderStatusUsecase{
		tx:          tx,
		transitions: transitions,
		payments:    payments,
		logger:      logger,
	}
}

type StatusChangeInput struct {
	Status       string
	Note         string
	CancelReason string
}

type StatusChangeOutput struct {
	OrderID       string `json:"order_id"`
	OrderCode     string `json:"order_code"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	Message       string `json:"message"`
}

// RequestStatusChange は顧客からのステータス変更要求を検証して適用する。
// 遷移とその履歴追記が1トランザクション、決済通知はコミット後。
func (u *OrderStatusUsecase) RequestStatusChange(ctx context.Context, userID int64, orderID string, in StatusChangeInput) (StatusChangeOutput, error) {
	// 1. 認証必須
	if userID <= 0 {
		return StatusChangeOutput{}, NewUnauthorized("unauthorized")
	}
	if orderID == "" {
		return StatusChangeOutput{}, NewBusinessRule("order id is required")
	}

	target, err := model.ToOrderStatus(in.Status)
	if err != nil {
		return StatusChangeOutput{}, NewBusinessRule("invalid order status")
	}

	var out StatusChangeOutput
	var updated model.Order

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 2. 自分の注文だけ。他人の注文は存在しない扱い
		o, err := r.Orders().FindByIDAndUser(ctx, orderID, userID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("order not found")
		}
		if err != nil {
			return err
		}

		// 3. 同じステータスへの変更は常に拒否
		if target == o.Status {
			return NewBusinessRule(fmt.Sprintf("order is already %s", o.Status))
		}

		// 4. 遷移表チェック
		if !u.transitions.CanTransition(o.Status, target) {
			if o.Status == model.OrderStatusShipping && target == model.OrderStatusCancelled {
				return NewBusinessRule("orders that are already shipping cannot be cancelled, please contact support")
			}
			allowed := u.transitions.AllowedNext(o.Status)
			if len(allowed) == 0 {
				return NewBusinessRule(fmt.Sprintf("order status %s is final and cannot be changed", o.Status))
			}
			names := lo.Map(allowed, func(s model.OrderStatus, _ int) string { return string(s) })
			return NewBusinessRule(fmt.Sprintf(
				"cannot change order status from %s to %s, allowed: %s",
				o.Status, target, strings.Join(names, ", "),
			))
		}

		// 5. 返品は期限チェック。お届け日時の代わりにUpdatedAt（無ければCreatedAt）を使う
		if target == model.OrderStatusReturned {
			basis := o.UpdatedAt
			if basis.IsZero() {
				basis = o.CreatedAt
			}
			// 丸1日単位で数える。ちょうど7日目まではOK
			days := int(time.Since(basis).Hours() / 24)
			if days > returnWindowDays {
				return NewBusinessRule(fmt.Sprintf(
					"return window of %d days has passed, order was delivered %d days ago",
					returnWindowDays, days,
				))
			}
		}

		// 6. compare-and-swapで適用。同じ注文への同時遷移は片方が負ける
		ok, err := r.Orders().UpdateStatusIfCurrent(ctx, o.ID, o.Status, target, in.CancelReason)
		if err != nil {
			return err
		}
		if !ok {
			return NewConflict("order status was changed by another request, please retry")
		}

		// 7. 履歴追記
		note := in.Note
		if note == "" {
			note = defaultStatusNote(target)
		}
		if err := r.OrderHistory().Create(ctx, model.OrderStatusHistory{
			OrderID:   o.ID,
			Status:    target,
			Note:      note,
			ActorID:   &userID,
			ActorRole: model.RoleCustomer,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}

		o.Status = target
		if target == model.OrderStatusCancelled {
			o.CancelReason = in.CancelReason
		}
		updated = o

		out = StatusChangeOutput{
			OrderID:       o.ID,
			OrderCode:     o.Code,
			Status:        string(target),
			PaymentStatus: string(o.PaymentStatus),
			Message:       statusChangeMessage(target),
		}
		return nil
	})

	if err != nil {
		return StatusChangeOutput{}, err
	}

	// 8. 決済側への通知。ここの失敗は注文に影響させない
	if err := u.payments.OrderStatusChanged(ctx, updated); err != nil {
		u.logger.Warn("payment processor notification failed",
			zap.String("order_id", updated.ID),
			zap.String("status", string(updated.Status)),
			zap.Error(err),
		)
	}

	return out, nil
}

func defaultStatusNote(s model.OrderStatus) string {
	switch s {
	case model.OrderStatusCancelled:
		return "Order cancelled by customer"
	case model.OrderStatusDelivered:
		return "Order confirmed as delivered"
	case model.OrderStatusReturned:
		return "Return requested by customer"
	default:
		return fmt.Sprintf("Status changed to %s", s)
	}
}

func statusChangeMessage(s model.OrderStatus) string {
	switch s {
	case model.OrderStatusCancelled:
		return "Your order has been cancelled"
	case model.OrderStatusDelivered:
		return "Thank you for confirming the delivery"
	case model.OrderStatusReturned:
		return "Your return request has been received"
	default:
		return fmt.Sprintf("Order status updated to %s", s)
	}
}
