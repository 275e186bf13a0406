package controllers

import (
	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
)

type DriverController struct {
	Drivers *services.DriverService
}

func NewDriverController(drivers *services.DriverService) *DriverController {
	return &DriverController{Drivers: drivers}
}

// GET /driver/available-orders
func (dc *DriverController) AvailableOrders(c *gin.Context) {
	rows, err := dc.Drivers.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rows})
}

type orderIDReq struct {
	OrderID uint `json:"orderId" binding:"required"`
}

// POST /driver/accept-order
func (dc *DriverController) AcceptOrder(c *gin.Context) {
	var req orderIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := dc.Drivers.Claim(utils.CurrentUserID(c), req.OrderID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order accepted", "orderId": req.OrderID})
}

// POST /driver/deliver-order
func (dc *DriverController) DeliverOrder(c *gin.Context) {
	var req orderIDReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := dc.Drivers.Complete(utils.CurrentUserID(c), req.OrderID); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "order delivered", "orderId": req.OrderID})
}

// GET /driver/current-order
func (dc *DriverController) CurrentOrder(c *gin.Context) {
	o, err := dc.Drivers.CurrentOrder(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// GET /driver/earnings
func (dc *DriverController) Earnings(c *gin.Context) {
	out, err := dc.Drivers.Earnings(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /driver/deliveries-today
func (dc *DriverController) DeliveriesToday(c *gin.Context) {
	n, err := dc.Drivers.DeliveriesToday(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deliveriesToday": n})
}
