package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name        string `json:"name"`
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Role        string `gorm:"not null;default:customer" json:"role"`

	// Relations; preload only when needed
	Orders []Order `json:"-"`
	Carts  []Cart  `json:"-"`
}
