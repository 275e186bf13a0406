package entity

import (
	"gorm.io/gorm"
)

// OrderItem is a snapshot of a cart line at placement time; immutable after create.
type OrderItem struct {
	gorm.Model
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
}
