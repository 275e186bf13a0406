package services

import (
	"errors"
	"time"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusNotifier receives order status changes, e.g. the websocket feed.
type StatusNotifier interface {
	OrderStatusChanged(orderID uint, status string)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	AddressRepo *repository.AddressRepository
	Pricing     *PricingService
	Carts       *CartStore
	Notifier    StatusNotifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	addressRepo *repository.AddressRepository,
	pricing *PricingService,
	carts *CartStore,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, AddressRepo: addressRepo, Pricing: pricing, Carts: carts}
}

func (s *OrderService) notify(orderID uint, status string) {
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(orderID, status)
	}
}

type PlaceOrderReq struct {
	Items         []PriceLine `json:"items" binding:"required,min=1,dive"`
	AddressID     uint        `json:"addressId" binding:"required"`
	PaymentMethod string      `json:"paymentMethod" binding:"required"`
	CouponID      *uint       `json:"couponId"`
}

type PlaceOrderRes struct {
	OrderID  uint    `json:"orderId"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Place prices the items and creates Payment, Order and line items as one
// all-or-nothing unit. All validation happens before the first write.
func (s *OrderService) Place(userID uint, req *PlaceOrderReq) (*PlaceOrderRes, error) {
	ok, err := s.AddressRepo.BelongsTo(req.AddressID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	q, err := s.Pricing.Quote(req.Items, req.CouponID, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var out PlaceOrderRes
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		payment := entity.Payment{
			Amount:    q.Total,
			Method:    req.PaymentMethod,
			Status:    q.PaymentStatus,
			Reference: uuid.NewString(),
		}
		if q.PaymentStatus == entity.PaymentPaid {
			now := time.Now()
			payment.PaidAt = &now
		}
		if err := s.Repo.CreatePayment(tx, &payment); err != nil {
			return err
		}

		order := entity.Order{
			Status:       entity.StatusPlaced,
			Subtotal:     q.Subtotal,
			Discount:     q.Discount,
			DeliveryFee:  q.DeliveryFee,
			PlatformFee:  q.PlatformFee,
			Total:        q.Total,
			UserID:       userID,
			RestaurantID: q.RestaurantID,
			AddressID:    req.AddressID,
			PaymentID:    payment.ID,
			CouponID:     q.CouponID,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, l := range q.Lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: l.MenuItemID,
				Qty:        l.Quantity,
				UnitPrice:  l.UnitPrice,
				Total:      l.Total,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		out = PlaceOrderRes{OrderID: order.ID, Subtotal: q.Subtotal, Discount: q.Discount, Total: q.Total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The session cart is spent once the order exists.
	if s.Carts != nil {
		s.Carts.Drop(userID)
	}
	s.notify(out.OrderID, entity.StatusPlaced)
	return &out, nil
}

func (s *OrderService) ListForUser(userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListOrdersForUser(userID, limit)
}

type OrderDetail struct {
	ID           uint               `json:"id"`
	Status       string             `json:"status"`
	Subtotal     float64            `json:"subtotal"`
	Discount     float64            `json:"discount"`
	DeliveryFee  float64            `json:"deliveryFee"`
	PlatformFee  float64            `json:"platformFee"`
	Total        float64            `json:"total"`
	RestaurantID uint               `json:"restaurantId"`
	Items        []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		ID: o.ID, Status: o.Status,
		Subtotal: o.Subtotal, Discount: o.Discount,
		DeliveryFee: o.DeliveryFee, PlatformFee: o.PlatformFee, Total: o.Total,
		RestaurantID: o.RestaurantID, Items: items,
	}, nil
}
