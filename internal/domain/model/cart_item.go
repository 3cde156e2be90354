package model

import "time"

// カートの明細。
// (cart_id, variant_id) は一意。同一バリアントの追加は数量加算になる。
type CartItem struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID    string    `gorm:"type:uuid;not null;index:idx_cart_variant,unique" json:"cart_id"`
	VariantID int64     `gorm:"not null;index:idx_cart_variant,unique" json:"variant_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
