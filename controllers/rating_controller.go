package controllers

import (
	"strconv"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	Ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{Ratings: ratings}
}

type rateReq struct {
	OrderID uint `json:"orderId" binding:"required"`
	Rating  int  `json:"rating" binding:"required"`
}

// POST /users/rating
func (rc *RatingController) Rate(c *gin.Context) {
	var req rateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rt, err := rc.Ratings.Rate(utils.CurrentUserID(c), req.OrderID, req.Rating)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rt)
}

// GET /users/rating/:orderId
func (rc *RatingController) GetForOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("orderId"))
	rt, err := rc.Ratings.GetForOrder(utils.CurrentUserID(c), uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rt)
}
