package controllers

import (
	"errors"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrOrderClaimed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidItem),
		errors.Is(err, services.ErrInvalidCoupon),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrAlreadyRated),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrNotDelivered),
		errors.Is(err, services.ErrActiveDelivery):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrBadCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
