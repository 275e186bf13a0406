package services

import (
	"testing"
	"time"

	"github.com/g-anupam/next-delivery/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteSubtotal(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	q, err := svc.Quote([]PriceLine{
		{MenuItemID: f.ItemA.ID, Quantity: 2},
		{MenuItemID: f.ItemB.ID, Quantity: 1},
	}, nil, entity.PaymentMethodUPI)
	require.NoError(t, err)

	assert.InDelta(t, 27.98, q.Subtotal, 0.001)
	assert.Zero(t, q.Discount)
	assert.InDelta(t, 27.98+30+5, q.Total, 0.001)
	assert.Equal(t, f.Rest.ID, q.RestaurantID)
	assert.Equal(t, entity.PaymentPaid, q.PaymentStatus)
	assert.Nil(t, q.CouponID)
}

func TestQuoteCouponDiscountRounds(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	expiry := time.Now().AddDate(0, 1, 0)
	c := f.coupon(t, f.Rest.ID, 10, &expiry)

	q, err := svc.Quote([]PriceLine{
		{MenuItemID: f.ItemA.ID, Quantity: 2},
		{MenuItemID: f.ItemB.ID, Quantity: 1},
	}, &c.ID, entity.PaymentMethodCard)
	require.NoError(t, err)

	// 27.98 * 10% = 2.798, rounded to 2.80
	assert.InDelta(t, 2.80, q.Discount, 0.001)
	assert.InDelta(t, 27.98-2.80+30+5, q.Total, 0.001)
	require.NotNil(t, q.CouponID)
	assert.Equal(t, c.ID, *q.CouponID)
}

func TestQuoteExpiredCouponRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	expired := time.Now().AddDate(0, 0, -1)
	c := f.coupon(t, f.Rest.ID, 50, &expired)

	_, err := svc.Quote([]PriceLine{{MenuItemID: f.ItemA.ID, Quantity: 1}}, &c.ID, entity.PaymentMethodUPI)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestQuoteForeignCouponRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	c := f.coupon(t, f.Rest2.ID, 10, nil)

	_, err := svc.Quote([]PriceLine{{MenuItemID: f.ItemA.ID, Quantity: 1}}, &c.ID, entity.PaymentMethodUPI)
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestQuoteNilExpiryCouponNeverExpires(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	c := f.coupon(t, f.Rest.ID, 20, nil)

	q, err := svc.Quote([]PriceLine{{MenuItemID: f.ItemB.ID, Quantity: 1}}, &c.ID, entity.PaymentMethodUPI)
	require.NoError(t, err)
	assert.InDelta(t, 1.20, q.Discount, 0.001)
}

func TestQuoteZeroPercentCouponNotApplied(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	c := f.coupon(t, f.Rest.ID, 0, nil)

	q, err := svc.Quote([]PriceLine{{MenuItemID: f.ItemA.ID, Quantity: 1}}, &c.ID, entity.PaymentMethodUPI)
	require.NoError(t, err)
	assert.Zero(t, q.Discount)
	assert.Nil(t, q.CouponID)
}

func TestQuoteDiscountNeverNegative(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	c := f.coupon(t, f.Rest.ID, 100, nil)

	q, err := svc.Quote([]PriceLine{{MenuItemID: f.ItemB.ID, Quantity: 1}}, &c.ID, entity.PaymentMethodUPI)
	require.NoError(t, err)
	// fully discounted: only fees remain
	assert.InDelta(t, 35, q.Total, 0.001)
}

func TestQuoteCrossRestaurantItemsRejected(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	_, err := svc.Quote([]PriceLine{
		{MenuItemID: f.ItemA.ID, Quantity: 1},
		{MenuItemID: f.ItemOther.ID, Quantity: 1},
	}, nil, entity.PaymentMethodUPI)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestQuoteUnknownItemRejected(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newPricing(db)

	_, err := svc.Quote([]PriceLine{{MenuItemID: 9999, Quantity: 1}}, nil, entity.PaymentMethodUPI)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestQuoteEmptyLinesRejected(t *testing.T) {
	db := newTestDB(t)
	seedFixture(t, db)
	svc := newPricing(db)

	_, err := svc.Quote(nil, nil, entity.PaymentMethodUPI)
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestQuotePaymentStatus(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := newPricing(db)

	line := []PriceLine{{MenuItemID: f.ItemA.ID, Quantity: 1}}

	q, err := svc.Quote(line, nil, entity.PaymentMethodCOD)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, q.PaymentStatus)

	q, err = svc.Quote(line, nil, entity.PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPaid, q.PaymentStatus)

	_, err = svc.Quote(line, nil, "Barter")
	assert.ErrorIs(t, err, ErrInvalidPayment)
}
