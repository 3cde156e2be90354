package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。注文作成時点のバリアント情報をまるごとスナップショットする。
// 以後カタログが変更・削除されても注文側は影響を受けない。
type OrderItem struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      string          `gorm:"type:uuid;not null;index" json:"order_id"`
	VariantID    int64           `gorm:"not null;index" json:"variant_id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	SKU          string          `gorm:"type:varchar(255);not null" json:"sku"`
	ColorName    string          `gorm:"type:varchar(100);not null" json:"color_name"`
	SizeName     string          `gorm:"type:varchar(50);not null" json:"size_name"`
	Thumbnail    string          `gorm:"type:varchar(500)" json:"thumbnail"`
	CategoryID   int64           `gorm:"not null" json:"category_id"`
	CategoryName string          `gorm:"type:varchar(255);not null" json:"category_name"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity     int64           `gorm:"not null" json:"quantity"`
	LineTotal    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// バリアントと数量からスナップショットを作る。LineTotal = 単価×数量。
func NewOrderItemSnapshot(v ProductVariant, quantity int64) OrderItem {
	return OrderItem{
		VariantID:    v.ID,
		ProductName:  v.ProductName,
		SKU:          v.SKU(),
		ColorName:    v.ColorName,
		SizeName:     v.SizeName,
		Thumbnail:    v.Thumbnail,
		CategoryID:   v.CategoryID,
		CategoryName: v.CategoryName,
		UnitPrice:    v.Price,
		Quantity:     quantity,
		LineTotal:    v.Price.Mul(decimal.NewFromInt(quantity)),
	}
}
