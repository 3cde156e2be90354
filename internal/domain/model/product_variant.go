package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 商品バリアント（色×サイズのSKU）。
// カタログ管理は別システムの持ち物で、ここでは読み取りと在庫減算だけを行う。
// スナップショットに必要な商品側の情報は非正規化して持つ。
type ProductVariant struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName  string          `gorm:"type:varchar(255);not null" json:"product_name"`
	ProductSlug  string          `gorm:"type:varchar(255);not null" json:"product_slug"`
	ColorName    string          `gorm:"type:varchar(100);not null" json:"color_name"`
	SizeName     string          `gorm:"type:varchar(50);not null" json:"size_name"`
	Thumbnail    string          `gorm:"type:varchar(500)" json:"thumbnail"`
	CategoryID   int64           `gorm:"not null;index" json:"category_id"`
	CategoryName string          `gorm:"type:varchar(255);not null" json:"category_name"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock        int64           `gorm:"not null" json:"stock"`
	IsActive     bool            `gorm:"not null;default:false" json:"is_active"`
	CreatedAt    time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// SKUは slug-color-size を小文字で連結したもの。
func (v ProductVariant) SKU() string {
	return strings.ToLower(fmt.Sprintf("%s-%s-%s", v.ProductSlug, v.ColorName, v.SizeName))
}
