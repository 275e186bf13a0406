package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database for one test. A single pooled
// connection keeps concurrent access serialized the way a real server's store
// would serialize conditional updates.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.Address{}, &entity.Coupon{},
		&entity.Payment{}, &entity.Order{}, &entity.OrderItem{},
		&entity.Driver{}, &entity.Rating{},
	))
	return db
}

type fixture struct {
	db *gorm.DB

	Customer  entity.User
	Address   entity.Address
	Owner     entity.User
	Rest      entity.Restaurant
	Owner2    entity.User
	Rest2     entity.Restaurant
	ItemA     entity.MenuItem // 10.99, Rest
	ItemB     entity.MenuItem // 6.00, Rest
	ItemOther entity.MenuItem // 5.25, Rest2
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{db: db}

	f.Customer = entity.User{Email: "customer@test.local", Password: "x", Name: "Cust", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(&f.Customer).Error)
	f.Address = entity.Address{FirstLine: "1 Test Lane", City: "Testville", Pincode: "560001", UserID: f.Customer.ID}
	require.NoError(t, db.Create(&f.Address).Error)

	f.Owner = entity.User{Email: "owner@test.local", Password: "x", Name: "Owner", Role: entity.RoleRestaurant}
	require.NoError(t, db.Create(&f.Owner).Error)
	f.Rest = entity.Restaurant{Name: "Spice Route", Address: "12 MG Road", UserID: f.Owner.ID}
	require.NoError(t, db.Create(&f.Rest).Error)

	f.Owner2 = entity.User{Email: "owner2@test.local", Password: "x", Name: "Owner2", Role: entity.RoleRestaurant}
	require.NoError(t, db.Create(&f.Owner2).Error)
	f.Rest2 = entity.Restaurant{Name: "Wok This Way", Address: "4 Brigade Road", UserID: f.Owner2.ID}
	require.NoError(t, db.Create(&f.Rest2).Error)

	f.ItemA = entity.MenuItem{Name: "Butter Chicken", Price: 10.99, RestaurantID: f.Rest.ID}
	f.ItemB = entity.MenuItem{Name: "Dal Makhani", Price: 6.00, RestaurantID: f.Rest.ID}
	f.ItemOther = entity.MenuItem{Name: "Hakka Noodles", Price: 5.25, RestaurantID: f.Rest2.ID}
	require.NoError(t, db.Create(&f.ItemA).Error)
	require.NoError(t, db.Create(&f.ItemB).Error)
	require.NoError(t, db.Create(&f.ItemOther).Error)

	return f
}

func (f *fixture) coupon(t *testing.T, restID uint, percent float64, expiry *time.Time) entity.Coupon {
	t.Helper()
	c := entity.Coupon{DiscountPercent: percent, Expiry: expiry, RestaurantID: restID}
	require.NoError(t, f.db.Create(&c).Error)
	return c
}

func (f *fixture) driver(t *testing.T, email string) (entity.User, entity.Driver) {
	t.Helper()
	u := entity.User{Email: email, Password: "x", Name: "Driver", Role: entity.RoleDriver}
	require.NoError(t, f.db.Create(&u).Error)
	d := entity.Driver{VehicleNo: "KA-01-1234", UserID: u.ID}
	require.NoError(t, f.db.Create(&d).Error)
	return u, d
}

// order inserts an order (with payment) in the given status.
func (f *fixture) order(t *testing.T, status string, total float64) entity.Order {
	t.Helper()
	p := entity.Payment{Amount: total, Method: entity.PaymentMethodUPI, Status: entity.PaymentPaid, Reference: "test"}
	require.NoError(t, f.db.Create(&p).Error)
	o := entity.Order{
		Status:       status,
		Subtotal:     total,
		Total:        total,
		UserID:       f.Customer.ID,
		RestaurantID: f.Rest.ID,
		AddressID:    f.Address.ID,
		PaymentID:    p.ID,
	}
	require.NoError(t, f.db.Create(&o).Error)
	return o
}

func newPricing(db *gorm.DB) *PricingService {
	return NewPricingService(
		repository.NewMenuRepository(db),
		repository.NewCouponRepository(db),
		30, 5,
	)
}

func newOrderSvc(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewAddressRepository(db),
		newPricing(db),
		NewCartStore(),
	)
}

func newTransitionSvc(db *gorm.DB) *TransitionService {
	return NewTransitionService(db, repository.NewOrderRepository(db), repository.NewRestaurantRepository(db))
}

func newDriverSvc(db *gorm.DB) *DriverService {
	return NewDriverService(db, repository.NewOrderRepository(db), repository.NewUserRepository(db))
}
