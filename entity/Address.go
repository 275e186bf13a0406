package entity

import (
	"gorm.io/gorm"
)

type Address struct {
	gorm.Model
	FirstLine  string `json:"firstLine"`
	SecondLine string `json:"secondLine"`
	City       string `json:"city"`
	Pincode    string `json:"pincode"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
