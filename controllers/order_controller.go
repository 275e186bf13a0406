package controllers

import (
	"strconv"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// POST /users/order
func (oc *OrderController) Place(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.Orders.Place(uid, &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /users/orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, err := oc.Orders.ListForUser(uid, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /users/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	out, err := oc.Orders.DetailForUser(uid, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}
