package model

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// 新しいステータスを足したら validOrderStatuses にも追加すること
const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipping  OrderStatus = "SHIPPING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusReturned  OrderStatus = "RETURNED"
)

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:   {},
	OrderStatusConfirmed: {},
	OrderStatusShipping:  {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
	OrderStatusReturned:  {},
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}
	return "", errors.New("invalid order status")
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentMethodCOD          PaymentMethod = "COD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// 注文。作成後に変わるのは Status / PaymentStatus / CancelReason / UpdatedAt だけ。
// 明細・住所・履歴は作成時に固定される。
type Order struct {
	ID             string          `gorm:"type:uuid;primaryKey" json:"id"`
	Code           string          `gorm:"type:varchar(30);not null;uniqueIndex" json:"code"`
	UserID         *int64          `gorm:"index" json:"user_id,omitempty"`
	CustomerName   string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerPhone  string          `gorm:"type:varchar(30);not null" json:"customer_phone"`
	CustomerEmail  string          `gorm:"type:varchar(255)" json:"customer_email"`
	SubTotal       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"sub_total"`
	ShippingFee    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"shipping_fee"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"discount_amount"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"tax_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	Status         OrderStatus     `gorm:"type:varchar(20);not null;index" json:"status"`
	PaymentStatus  PaymentStatus   `gorm:"type:varchar(20);not null" json:"payment_status"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null" json:"payment_method"`
	Note           string          `gorm:"type:text" json:"note"`
	CancelReason   string          `gorm:"type:text" json:"cancel_reason"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

const orderCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// 注文コード生成。ORD-<14桁タイムスタンプ>-<ランダム6文字>。
func GenerateOrderCode(now time.Time) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = orderCodeCharset[rand.Intn(len(orderCodeCharset))]
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102150405"), string(suffix))
}
