package entity

import (
	"gorm.io/gorm"
)

type Cart struct {
	gorm.Model
	SessionID string `gorm:"uniqueIndex;not null" json:"sessionId"`
	UserID    uint   `gorm:"index" json:"userId"` // 0 = anonymous session cart
	User      User   `json:"-"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
