package repository

import (
	"time"

	"github.com/g-anupam/next-delivery/entity"

	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

// FindValid returns the coupon only if it is scoped to the restaurant and
// unexpired as of the given day (nil expiry never expires).
func (r *CouponRepository) FindValid(couponID, restID uint, today time.Time) (*entity.Coupon, error) {
	var c entity.Coupon
	err := r.DB.Where("id = ? AND restaurant_id = ? AND (expiry IS NULL OR expiry >= ?)",
		couponID, restID, today).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) ListForRestaurant(restID uint) ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Where("restaurant_id = ?", restID).Order("expiry ASC").Find(&out).Error
	return out, err
}

func (r *CouponRepository) ListUnexpired(restID uint, today time.Time) ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Where("restaurant_id = ? AND (expiry IS NULL OR expiry >= ?)", restID, today).
		Order("discount_percent DESC").Find(&out).Error
	return out, err
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

// DeleteOwned removes a coupon only when it belongs to the restaurant.
func (r *CouponRepository) DeleteOwned(couponID, restID uint) (int64, error) {
	res := r.DB.Where("id = ? AND restaurant_id = ?", couponID, restID).Delete(&entity.Coupon{})
	return res.RowsAffected, res.Error
}
