package controllers

import (
	"strconv"
	"time"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
)

// OwnerController is the restaurant-owner surface: incoming orders, status
// transitions, the menu and coupons.
type OwnerController struct {
	Transitions *services.TransitionService
	Coupons     *services.CouponService
	Restaurants *services.RestaurantService
}

func NewOwnerController(transitions *services.TransitionService, coupons *services.CouponService, restaurants *services.RestaurantService) *OwnerController {
	return &OwnerController{Transitions: transitions, Coupons: coupons, Restaurants: restaurants}
}

// GET /restaurant/orders?status=
func (oc *OwnerController) Orders(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := oc.Transitions.ListForRestaurant(uid, c.Query("status"), limit)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /restaurant/orders/:id
func (oc *OwnerController) OrderDetail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := oc.Transitions.DetailForRestaurant(uid, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

type updateStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /restaurant/orders/:id/status
func (oc *OwnerController) UpdateStatus(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Transitions.Advance(uid, uint(id), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": id, "status": req.Status})
}

// GET /restaurant/coupons
func (oc *OwnerController) ListCoupons(c *gin.Context) {
	items, err := oc.Coupons.ListForOwner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type createCouponReq struct {
	DiscountPercent float64 `json:"discountPercent" binding:"required"`
	Expiry          string  `json:"expiry"` // YYYY-MM-DD, empty = never expires
}

// POST /restaurant/coupons
func (oc *OwnerController) CreateCoupon(c *gin.Context) {
	var req createCouponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var expiry *time.Time
	if req.Expiry != "" {
		t, err := time.ParseInLocation("2006-01-02", req.Expiry, time.Local)
		if err != nil {
			resp.BadRequest(c, "expiry must be YYYY-MM-DD")
			return
		}
		expiry = &t
	}

	coupon, err := oc.Coupons.Create(utils.CurrentUserID(c), req.DiscountPercent, expiry)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, coupon)
}

// DELETE /restaurant/coupons/:id
func (oc *OwnerController) DeleteCoupon(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.Coupons.Delete(utils.CurrentUserID(c), uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "coupon deleted"})
}

// GET /restaurant/menu
func (oc *OwnerController) Menu(c *gin.Context) {
	items, err := oc.Restaurants.MenuForOwner(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type createMenuItemReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// POST /restaurant/menu
func (oc *OwnerController) CreateMenuItem(c *gin.Context) {
	var req createMenuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := oc.Restaurants.AddMenuItem(utils.CurrentUserID(c), req.Name, req.Description, req.Price)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// GET /restaurant/earnings
func (oc *OwnerController) Earnings(c *gin.Context) {
	out, err := oc.Restaurants.Earnings(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
