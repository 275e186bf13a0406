package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"gorm.io/gorm"
)

type CouponService struct {
	Repo     *repository.CouponRepository
	RestRepo *repository.RestaurantRepository
}

func NewCouponService(repo *repository.CouponRepository, restRepo *repository.RestaurantRepository) *CouponService {
	return &CouponService{Repo: repo, RestRepo: restRepo}
}

func (s *CouponService) restaurantFor(ownerUserID uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByUserID(ownerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

func (s *CouponService) ListForOwner(ownerUserID uint) ([]entity.Coupon, error) {
	rest, err := s.restaurantFor(ownerUserID)
	if err != nil {
		return nil, err
	}
	return s.Repo.ListForRestaurant(rest.ID)
}

// Create adds a coupon for the owner's restaurant. A nil expiry makes the
// coupon permanent.
func (s *CouponService) Create(ownerUserID uint, discountPercent float64, expiry *time.Time) (*entity.Coupon, error) {
	if discountPercent <= 0 || discountPercent > 100 {
		return nil, fmt.Errorf("%w: discount must be in (0, 100]", ErrInvalidCoupon)
	}
	rest, err := s.restaurantFor(ownerUserID)
	if err != nil {
		return nil, err
	}
	c := &entity.Coupon{
		DiscountPercent: discountPercent,
		Expiry:          expiry,
		RestaurantID:    rest.ID,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CouponService) Delete(ownerUserID, couponID uint) error {
	rest, err := s.restaurantFor(ownerUserID)
	if err != nil {
		return err
	}
	affected, err := s.Repo.DeleteOwned(couponID, rest.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// PublicList returns a restaurant's unexpired coupons for customers.
func (s *CouponService) PublicList(restID uint) ([]entity.Coupon, error) {
	return s.Repo.ListUnexpired(restID, today())
}
