package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"gorm.io/gorm"
)

// PricingService computes order totals from server-trusted prices. Client
// payloads carry only menu item ids and quantities.
type PricingService struct {
	MenuRepo   *repository.MenuRepository
	CouponRepo *repository.CouponRepository

	DeliveryFee float64
	PlatformFee float64
}

func NewPricingService(menuRepo *repository.MenuRepository, couponRepo *repository.CouponRepository, deliveryFee, platformFee float64) *PricingService {
	return &PricingService{
		MenuRepo:    menuRepo,
		CouponRepo:  couponRepo,
		DeliveryFee: deliveryFee,
		PlatformFee: platformFee,
	}
}

type PriceLine struct {
	MenuItemID uint `json:"id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type PricedLine struct {
	MenuItemID uint
	Quantity   int
	UnitPrice  float64
	Total      float64
}

type Quote struct {
	RestaurantID  uint
	Subtotal      float64
	Discount      float64
	DeliveryFee   float64
	PlatformFee   float64
	Total         float64
	CouponID      *uint // nil when no coupon ended up applied
	PaymentStatus string
	Lines         []PricedLine
}

// Quote validates the lines and prices the order:
// all items must exist and share exactly one restaurant, the optional coupon
// must be scoped to that restaurant and unexpired, and the discount never
// pushes the payable amount below zero. Fees are added after the discount.
func (s *PricingService) Quote(lines []PriceLine, couponID *uint, paymentMethod string) (*Quote, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidItem)
	}
	status, err := paymentStatusFor(paymentMethod)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidItem)
		}
		ids = append(ids, l.MenuItemID)
	}

	items, err := s.MenuRepo.GetBasics(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]entity.MenuItem, len(items))
	for _, m := range items {
		byID[m.ID] = m
	}

	var restID uint
	var subtotal float64
	priced := make([]PricedLine, 0, len(lines))
	for _, l := range lines {
		m, ok := byID[l.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: menu item %d not found", ErrInvalidItem, l.MenuItemID)
		}
		if restID == 0 {
			restID = m.RestaurantID
		} else if m.RestaurantID != restID {
			return nil, fmt.Errorf("%w: all items must belong to a single restaurant", ErrInvalidItem)
		}
		lineTotal := round2(m.Price * float64(l.Quantity))
		subtotal += m.Price * float64(l.Quantity)
		priced = append(priced, PricedLine{
			MenuItemID: m.ID,
			Quantity:   l.Quantity,
			UnitPrice:  m.Price,
			Total:      lineTotal,
		})
	}
	subtotal = round2(subtotal)

	var discount float64
	var usedCoupon *uint
	if couponID != nil {
		c, err := s.CouponRepo.FindValid(*couponID, restID, today())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCoupon
			}
			return nil, err
		}
		// A non-positive percentage prices to nothing; treat as not applied.
		if c.DiscountPercent > 0 {
			discount = round2(subtotal * c.DiscountPercent / 100)
			id := c.ID
			usedCoupon = &id
		}
	}

	payable := math.Max(subtotal-discount, 0)
	total := round2(payable + s.DeliveryFee + s.PlatformFee)

	return &Quote{
		RestaurantID:  restID,
		Subtotal:      subtotal,
		Discount:      discount,
		DeliveryFee:   s.DeliveryFee,
		PlatformFee:   s.PlatformFee,
		Total:         total,
		CouponID:      usedCoupon,
		PaymentStatus: status,
		Lines:         priced,
	}, nil
}

func paymentStatusFor(method string) (string, error) {
	switch method {
	case entity.PaymentMethodCOD:
		return entity.PaymentPending, nil
	case entity.PaymentMethodUPI, entity.PaymentMethodCard:
		// Mocked gateway: settled immediately.
		return entity.PaymentPaid, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPayment, method)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// today truncates to midnight so date-only expiries compare like CURDATE().
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func monthStart() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
