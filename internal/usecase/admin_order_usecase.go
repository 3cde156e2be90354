package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"
	repo "github.com/mduy26100/ZTino-Shop-sub000/internal/repository"

	"go.uber.org/zap"
)

// AdminOrderUsecase は管理者によるステータス遷移と一覧。
// 顧客側と同じガードの仕組みで、遷移表だけ管理者用を注入する。
type AdminOrderUsecase struct {
	tx          repo.TransactionManager
	transitions model.TransitionTable
	payments    PaymentProcessor
	logger      *zap.Logger
}

func NewAdminOrderUsecase(
	tx repo.TransactionManager,
	transitions model.TransitionTable,
	payments PaymentProcessor,
	logger *zap.Logger,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		tx:          tx,
		transitions: transitions,
		payments:    payments,
		logger:      logger,
	}
}

type AdminUpdateOrderStatusInput struct {
	Status string
	Note   string
}

// 注文一覧
func (u *AdminOrderUsecase) List(ctx context.Context, f repo.AdminOrderListFilter) ([]OrderOutput, int64, error) {
	if f.Page < 1 {
		return []OrderOutput{}, 0, NewBusinessRule("invalid page")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return []OrderOutput{}, 0, NewBusinessRule("invalid limit")
	}

	var outs []OrderOutput
	var total int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, cnt, err := r.Orders().ListAdmin(ctx, f)
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

// ステータス更新（CANCELLEDなら在庫戻し）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, actorAdminID int64, orderID string, in AdminUpdateOrderStatusInput) (StatusChangeOutput, error) {
	if actorAdminID <= 0 {
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
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound("order not found")
		}
		if err != nil {
			return err
		}

		if target == o.Status {
			return NewBusinessRule(fmt.Sprintf("order is already %s", o.Status))
		}
		if !u.transitions.CanTransition(o.Status, target) {
			return NewBusinessRule(fmt.Sprintf(
				"cannot change order status from %s to %s", o.Status, target,
			))
		}

		// 未発送のキャンセルは在庫を戻す
		if target == model.OrderStatusCancelled {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return err
			}
			for _, it := range items {
				if err := r.Variants().IncreaseStock(ctx, it.VariantID, it.Quantity); err != nil {
					return err
				}
			}
		}

		ok, err := r.Orders().UpdateStatusIfCurrent(ctx, o.ID, o.Status, target, "")
		if err != nil {
			return err
		}
		if !ok {
			return NewConflict("order status was changed by another request, please retry")
		}

		note := in.Note
		if note == "" {
			note = fmt.Sprintf("Status changed to %s by manager", target)
		}
		if err := r.OrderHistory().Create(ctx, model.OrderStatusHistory{
			OrderID:   o.ID,
			Status:    target,
			Note:      note,
			ActorID:   &actorAdminID,
			ActorRole: model.RoleManager,
			CreatedAt: time.Now(),
		}); err != nil {
			return err
		}

		o.Status = target
		updated = o

		out = StatusChangeOutput{
			OrderID:       o.ID,
			OrderCode:     o.Code,
			Status:        string(target),
			PaymentStatus: string(o.PaymentStatus),
			Message:       fmt.Sprintf("Order status updated to %s", target),
		}
		return nil
	})

	if err != nil {
		return StatusChangeOutput{}, err
	}

	if err := u.payments.OrderStatusChanged(ctx, updated); err != nil {
		u.logger.Warn("payment processor notification failed",
			zap.String("order_id", updated.ID),
			zap.String("status", string(updated.Status)),
			zap.Error(err),
		)
	}

	return out, nil
}
