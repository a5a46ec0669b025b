package entity

import (
	"gorm.io/gorm"
)

const (
	DishActive   = "ACTIVE"
	DishInactive = "INACTIVE"
)

type Dish struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Category    string `gorm:"not null" json:"category"` // STARTER / MAIN / DESSERT / OTHER
	Price       int64  `json:"price"`                    // céntimos
	ImageURL    string `json:"imageUrl"`
	Status      string `gorm:"not null;default:ACTIVE" json:"status"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
