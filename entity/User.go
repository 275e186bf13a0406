package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer   = "customer"
	RoleRestaurant = "restaurant"
	RoleDriver     = "driver"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// Relations, preload only when needed
	Addresses  []Address   `json:"-"`
	Orders     []Order     `json:"-"`
	Ratings    []Rating    `json:"-"`
	Restaurant *Restaurant `gorm:"foreignKey:UserID" json:"-"`
	Driver     *Driver     `gorm:"foreignKey:UserID" json:"-"`
}
