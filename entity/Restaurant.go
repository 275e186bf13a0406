package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name    string `json:"name"`
	Address string `json:"address"`
	Cuisine string `json:"cuisine"`

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
	Coupons   []Coupon   `json:"-"`
	Ratings   []Rating   `json:"-"`
}
