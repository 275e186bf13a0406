package repository

import (
	"time"

	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID           uint      `json:"id"`
	RestaurantID uint      `json:"restaurantId"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForUser(userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Model(&entity.Order{}).
		Select("id, restaurant_id, status, total, created_at").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

type RestaurantOrderSummary struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"userId"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListOrdersForRestaurant(restID uint, status string, limit int) ([]RestaurantOrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Table("orders AS o").
		Select("o.id, o.user_id, u.name AS customer_name, o.status, o.total, o.created_at").
		Joins("JOIN users u ON u.id = o.user_id").
		Where("o.restaurant_id = ?", restID)
	if status != "" {
		db = db.Where("o.status = ?", status)
	}
	var out []RestaurantOrderSummary
	err := db.Order("o.id DESC").Limit(limit).Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForRestaurant(restID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND restaurant_id = ?", orderID, restID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only when the current status still matches.
// RowsAffected == 0 means the guard failed (raced or illegal).
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Driver assignment ----------------

// ClaimForDriver is the single atomic claim: assign the driver and flip the
// status in one conditional UPDATE. At most one concurrent caller wins, and
// the NOT EXISTS guard keeps a driver from holding two deliveries even when
// their own claims race on different orders.
func (r *OrderRepository) ClaimForDriver(tx *gorm.DB, orderID, driverID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ? AND driver_id IS NULL", orderID, entity.StatusReadyForPickup).
		Where("NOT EXISTS (SELECT 1 FROM orders WHERE driver_id = ? AND status = ? AND deleted_at IS NULL)",
			driverID, entity.StatusOutForDelivery).
		Updates(map[string]any{"driver_id": driverID, "status": entity.StatusOutForDelivery})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) DeliverForDriver(tx *gorm.DB, orderID, driverID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND driver_id = ? AND status = ?", orderID, driverID, entity.StatusOutForDelivery).
		Update("status", entity.StatusDelivered)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type AvailableOrderRow struct {
	OrderID        uint    `json:"orderId"`
	Status         string  `json:"status"`
	Total          float64 `json:"total"`
	RestaurantName string  `json:"restaurantName"`
	FirstLine      string  `json:"firstLine"`
	SecondLine     string  `json:"secondLine"`
	City           string  `json:"city"`
	Pincode        string  `json:"pincode"`
}

// Claimable orders, oldest first.
func (r *OrderRepository) ListAvailable(limit int) ([]AvailableOrderRow, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []AvailableOrderRow
	err := r.DB.Table("orders AS o").
		Select("o.id AS order_id, o.status, o.total, r.name AS restaurant_name, a.first_line, a.second_line, a.city, a.pincode").
		Joins("JOIN restaurants r ON r.id = o.restaurant_id").
		Joins("JOIN addresses a ON a.id = o.address_id").
		Where("o.status = ? AND o.driver_id IS NULL", entity.StatusReadyForPickup).
		Order("o.id ASC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// IsViewer reports whether the user may watch the order: its customer, the
// owning restaurant's user or the assigned driver's user.
func (r *OrderRepository) IsViewer(orderID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Table("orders AS o").
		Joins("LEFT JOIN restaurants r ON r.id = o.restaurant_id").
		Joins("LEFT JOIN drivers d ON d.id = o.driver_id").
		Where("o.id = ? AND (o.user_id = ? OR r.user_id = ? OR d.user_id = ?)",
			orderID, userID, userID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *OrderRepository) FindActiveForDriver(driverID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("driver_id = ? AND status = ?", driverID, entity.StatusOutForDelivery).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ---------------- Order items & payments ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, qty, unit_price, total, menu_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}

func (r *OrderRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

// ---------------- Aggregates ----------------

// SumPaymentsForDriver sums payment amounts of delivered orders for a driver,
// optionally restricted to orders created since a point in time.
func (r *OrderRepository) SumPaymentsForDriver(driverID uint, since *time.Time) (float64, error) {
	db := r.DB.Table("orders AS o").
		Joins("JOIN payments p ON p.id = o.payment_id").
		Where("o.driver_id = ? AND o.status = ?", driverID, entity.StatusDelivered)
	if since != nil {
		db = db.Where("o.created_at >= ?", *since)
	}
	var row struct{ Total float64 }
	err := db.Select("COALESCE(SUM(p.amount), 0) AS total").Scan(&row).Error
	return row.Total, err
}

func (r *OrderRepository) CountDeliveredForDriver(driverID uint, since *time.Time) (int64, error) {
	db := r.DB.Model(&entity.Order{}).
		Where("driver_id = ? AND status = ?", driverID, entity.StatusDelivered)
	if since != nil {
		db = db.Where("created_at >= ?", *since)
	}
	var cnt int64
	err := db.Count(&cnt).Error
	return cnt, err
}

func (r *OrderRepository) SumPaymentsForRestaurant(restID uint, since *time.Time) (float64, error) {
	db := r.DB.Table("orders AS o").
		Joins("JOIN payments p ON p.id = o.payment_id").
		Where("o.restaurant_id = ?", restID)
	if since != nil {
		db = db.Where("o.created_at >= ?", *since)
	}
	var row struct{ Total float64 }
	err := db.Select("COALESCE(SUM(p.amount), 0) AS total").Scan(&row).Error
	return row.Total, err
}
