package services

import (
	"testing"

	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRatingSvc(db *gorm.DB) *RatingService {
	return NewRatingService(repository.NewRatingRepository(db), repository.NewOrderRepository(db))
}

func TestRateRequiresDeliveredOrder(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newRatingSvc(db)

	o := f.order(t, entity.StatusOutForDelivery, 20)

	_, err := svc.Rate(f.Customer.ID, o.ID, 4)
	assert.ErrorIs(t, err, ErrNotDelivered)
}

func TestRateOncePerOrder(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newRatingSvc(db)

	o := f.order(t, entity.StatusDelivered, 20)

	rt, err := svc.Rate(f.Customer.ID, o.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, f.Rest.ID, rt.RestaurantID)

	_, err = svc.Rate(f.Customer.ID, o.ID, 3)
	assert.ErrorIs(t, err, ErrAlreadyRated)
}

func TestRateScoreRange(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newRatingSvc(db)

	o := f.order(t, entity.StatusDelivered, 20)

	for _, score := range []int{0, -1, 6} {
		_, err := svc.Rate(f.Customer.ID, o.ID, score)
		assert.ErrorIs(t, err, ErrInvalidRating, "score %d", score)
	}
}

func TestRateForeignOrderNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newRatingSvc(db)

	o := f.order(t, entity.StatusDelivered, 20) // belongs to f.Customer

	_, err := svc.Rate(f.Owner.ID, o.ID, 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetForOrder(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newRatingSvc(db)

	o := f.order(t, entity.StatusDelivered, 20)

	_, err := svc.GetForOrder(f.Customer.ID, o.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Rate(f.Customer.ID, o.ID, 4)
	require.NoError(t, err)

	rt, err := svc.GetForOrder(f.Customer.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, rt.Score)
}
