package model

import "time"

// 配送先住所。注文と1:1で、注文作成後は変更しない。
type OrderAddress struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID       string    `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	RecipientName string    `gorm:"type:varchar(255);not null" json:"recipient_name"`
	Phone         string    `gorm:"type:varchar(30);not null" json:"phone"`
	Street        string    `gorm:"type:varchar(255);not null" json:"street"`
	Ward          string    `gorm:"type:varchar(100);not null" json:"ward"`
	District      string    `gorm:"type:varchar(100);not null" json:"district"`
	City          string    `gorm:"type:varchar(100);not null" json:"city"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
