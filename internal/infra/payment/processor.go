package payment

import (
	"context"

	"github.com/mduy26100/ZTino-Shop-sub000/internal/domain/model"

	"go.uber.org/zap"
)

// 決済ゲートウェイ連携は別システムの持ち物。
// ここではステータス変化を記録して、返金が必要なケースだけ目立たせる。
type LoggingProcessor struct {
	logger *zap.Logger
}

func NewLoggingProcessor(logger *zap.Logger) *LoggingProcessor {
	return &LoggingProcessor{logger: logger}
}

func (p *LoggingProcessor) OrderStatusChanged(ctx context.Context, order model.Order) error {
	fields := []zap.Field{
		zap.String("order_id", order.ID),
		zap.String("order_code", order.Code),
		zap.String("status", string(order.Status)),
		zap.String("payment_status", string(order.PaymentStatus)),
	}

	// 支払い済みの注文がキャンセル・返品されたら返金が要る
	if order.PaymentStatus == model.PaymentStatusPaid &&
		(order.Status == model.OrderStatusCancelled || order.Status == model.OrderStatusReturned) {
		p.logger.Info("refund required for order", fields...)
		return nil
	}

	p.logger.Info("order status changed", fields...)
	return nil
}
