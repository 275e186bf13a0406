package entity

import (
	"gorm.io/gorm"
)

// One rating per (order, customer), only after delivery.
type Rating struct {
	gorm.Model
	Score int `json:"score"` // 1..5

	OrderID uint  `gorm:"uniqueIndex:idx_rating_order_user" json:"orderId"`
	Order   Order `json:"-"`

	UserID uint `gorm:"uniqueIndex:idx_rating_order_user" json:"userId"` // customer
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
