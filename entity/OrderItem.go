package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the cart line at checkout time; dish name and price
// are copied so later menu edits do not rewrite old tickets.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID uint `json:"dishId"`
	Dish   Dish `json:"-"`

	DishName  string `json:"dishName"`
	Category  string `json:"category"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"`
	Total     int64  `json:"total"`
}
