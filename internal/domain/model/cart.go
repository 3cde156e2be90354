package model

import "time"

// 購入前の選択を入れるカート。
// UserIDがnilならゲストカート。削除はせずIsActiveで無効化する。
type Cart struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    *int64    `gorm:"index" json:"user_id,omitempty"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// カートを指定ユーザーが操作できるか。
// 未所有（ゲスト）カートは誰でも触れる。
func (c Cart) AccessibleBy(userID *int64) bool {
	if c.UserID == nil {
		return true
	}
	if userID == nil {
		return false
	}
	return *c.UserID == *userID
}
