package controllers

import (
	"strconv"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"

	"github.com/gin-gonic/gin"
)

// RestaurantController serves the public browse surface.
type RestaurantController struct {
	Restaurants *services.RestaurantService
	Coupons     *services.CouponService
}

func NewRestaurantController(restaurants *services.RestaurantService, coupons *services.CouponService) *RestaurantController {
	return &RestaurantController{Restaurants: restaurants, Coupons: coupons}
}

// GET /restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	rows, err := rc.Restaurants.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.Restaurants.Detail(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu
func (rc *RestaurantController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := rc.Restaurants.Menu(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurants/:id/coupons, unexpired only
func (rc *RestaurantController) PublicCoupons(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := rc.Coupons.PublicList(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
