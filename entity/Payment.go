package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "Card"
	PaymentMethodCOD  = "COD"

	PaymentPending = "Pending"
	PaymentPaid    = "Paid"
)

// Payment is created atomically with its order. The gateway is mocked:
// everything except COD is marked Paid immediately.
type Payment struct {
	gorm.Model
	Amount    float64    `json:"amount"`
	Method    string     `json:"method"`
	Status    string     `json:"status"`
	Reference string     `json:"reference"` // mock gateway reference
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}
