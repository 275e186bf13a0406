package entity

import (
	"gorm.io/gorm"
)

// Order statuses. Delivered is terminal.
const (
	StatusPlaced         = "Placed"
	StatusAccepted       = "Accepted"
	StatusPreparing      = "Preparing"
	StatusReadyForPickup = "Ready for Pickup"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

type Order struct {
	gorm.Model
	Status string `gorm:"not null;default:Placed" json:"status"`

	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	DeliveryFee float64 `json:"deliveryFee"`
	PlatformFee float64 `json:"platformFee"`
	Total       float64 `json:"total"`

	UserID uint `json:"userId"` // customer
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	AddressID uint    `json:"addressId"`
	Address   Address `json:"-"`

	PaymentID uint    `json:"paymentId"`
	Payment   Payment `json:"-"`

	CouponID *uint   `json:"couponId,omitempty"`
	Coupon   *Coupon `json:"-"`

	// Set at most once, guarded by "driver_id IS NULL" on the claim update.
	DriverID *uint   `json:"driverId,omitempty"`
	Driver   *Driver `json:"-"`

	Items []OrderItem `json:"-"`
}
