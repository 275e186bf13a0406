package services

import (
	"testing"
	"time"

	"github.com/g-anupam/next-delivery/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCouponSvc(db *gorm.DB) *CouponService {
	return NewCouponService(repository.NewCouponRepository(db), repository.NewRestaurantRepository(db))
}

func TestCreateCouponValidatesDiscount(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCouponSvc(db)

	for _, pct := range []float64{0, -5, 101} {
		_, err := svc.Create(f.Owner.ID, pct, nil)
		assert.ErrorIs(t, err, ErrInvalidCoupon, "percent %v", pct)
	}

	c, err := svc.Create(f.Owner.ID, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, f.Rest.ID, c.RestaurantID)
	assert.Nil(t, c.Expiry)
}

func TestDeleteCouponScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCouponSvc(db)

	c := f.coupon(t, f.Rest.ID, 10, nil)

	err := svc.Delete(f.Owner2.ID, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(f.Owner.ID, c.ID))
	err = svc.Delete(f.Owner.ID, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPublicListHidesExpiredCoupons(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCouponSvc(db)

	expired := time.Now().AddDate(0, 0, -1)
	future := time.Now().AddDate(0, 1, 0)
	f.coupon(t, f.Rest.ID, 5, &expired)
	live := f.coupon(t, f.Rest.ID, 10, &future)
	forever := f.coupon(t, f.Rest.ID, 15, nil)
	f.coupon(t, f.Rest2.ID, 20, nil) // other restaurant

	got, err := svc.PublicList(f.Rest.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := []uint{got[0].ID, got[1].ID}
	assert.Contains(t, ids, live.ID)
	assert.Contains(t, ids, forever.ID)
}

func TestListForOwnerIncludesExpired(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newCouponSvc(db)

	expired := time.Now().AddDate(0, 0, -1)
	f.coupon(t, f.Rest.ID, 5, &expired)
	f.coupon(t, f.Rest.ID, 10, nil)

	got, err := svc.ListForOwner(f.Owner.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
