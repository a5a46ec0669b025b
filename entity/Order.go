package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Number    string `gorm:"uniqueIndex;not null" json:"number"`
	UserID    uint   `gorm:"index" json:"userId"`
	User      User   `json:"-"`
	MenuCount int    `json:"menuCount"`
	Total     int64  `json:"total"` // céntimos

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
