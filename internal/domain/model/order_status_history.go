package model

import "time"

// 操作者の種別。
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleManager  Role = "MANAGER"
	RoleSystem   Role = "SYSTEM"
)

// 注文ステータス履歴（追記専用）。
// 「どのステータスに」「誰が」「いつ」変えたかを残す。更新も削除もしない。
type OrderStatusHistory struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   string      `gorm:"type:uuid;not null;index" json:"order_id"`
	Status    OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Note      string      `gorm:"type:text" json:"note"`
	ActorID   *int64      `gorm:"index" json:"actor_id,omitempty"`
	ActorRole Role        `gorm:"type:varchar(20);not null" json:"actor_role"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
