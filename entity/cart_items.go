package entity

import (
	"gorm.io/gorm"
)

// CartItem is one cart line, unique per (cart, dish). Qty stays >= 1 while
// the row exists; a line dropping to zero is deleted, never kept at zero.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"dish"`

	Category  string `json:"category"` // snapshot from Dish at add time
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // snapshot, céntimos
	Total     int64  `json:"total"`
}
