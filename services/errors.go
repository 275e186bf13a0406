package services

import "errors"

// Sentinel errors; controllers map these to HTTP statuses.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidItem       = errors.New("invalid menu item")
	ErrInvalidCoupon     = errors.New("invalid or expired coupon")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOrderClaimed      = errors.New("order no longer available")
	ErrEmailTaken        = errors.New("email already registered")
	ErrBadCredentials    = errors.New("invalid credentials")
	ErrAlreadyRated      = errors.New("order already rated")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrNotDelivered      = errors.New("order not delivered yet")
	ErrActiveDelivery    = errors.New("driver already has an active delivery")
)
