package entity

import (
	"time"

	"gorm.io/gorm"
)

// A nil Expiry means the coupon never expires.
type Coupon struct {
	gorm.Model
	DiscountPercent float64    `json:"discountPercent"`
	Expiry          *time.Time `json:"expiry,omitempty"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
