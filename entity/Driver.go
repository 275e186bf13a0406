package entity

import (
	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	VehicleNo string `json:"vehicleNo"`

	UserID uint `gorm:"uniqueIndex" json:"userId"`
	User   User `json:"-"`

	Orders []Order `json:"-"`
}
