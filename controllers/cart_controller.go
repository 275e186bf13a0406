package controllers

import (
	"errors"
	"strconv"

	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/repository"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartController exposes the per-session cart. Prices and restaurant ids come
// from the menu table, never from the client.
type CartController struct {
	Carts    *services.CartStore
	MenuRepo *repository.MenuRepository
}

func NewCartController(carts *services.CartStore, menuRepo *repository.MenuRepository) *CartController {
	return &CartController{Carts: carts, MenuRepo: menuRepo}
}

func (cc *CartController) snapshot(c *gin.Context, uid uint) {
	cart := cc.Carts.Snapshot(uid)
	resp.OK(c, gin.H{
		"lines":      cart.Lines,
		"conflict":   cart.Conflict,
		"totalItems": cart.TotalItems(),
		"totalPrice": cart.TotalPrice(),
	})
}

func (cc *CartController) Get(c *gin.Context) {
	cc.snapshot(c, utils.CurrentUserID(c))
}

type addCartItemReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

func (cc *CartController) AddItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := cc.MenuRepo.Get(req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	cc.Carts.With(uid, func(cart *services.Cart) {
		cart.AddItem(services.CartEntry{
			MenuItemID:   m.ID,
			Name:         m.Name,
			UnitPrice:    m.Price,
			RestaurantID: m.RestaurantID,
		})
	})
	cc.snapshot(c, uid)
}

type resolveConflictReq struct {
	Accept *bool `json:"accept" binding:"required"`
}

func (cc *CartController) ResolveConflict(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req resolveConflictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cc.Carts.With(uid, func(cart *services.Cart) {
		cart.ResolveConflict(*req.Accept)
	})
	cc.snapshot(c, uid)
}

func (cc *CartController) DecrementItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	menuItemID, restID, ok := cartLineKey(c)
	if !ok {
		return
	}
	cc.Carts.With(uid, func(cart *services.Cart) {
		cart.DecrementItem(menuItemID, restID)
	})
	cc.snapshot(c, uid)
}

func (cc *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	menuItemID, restID, ok := cartLineKey(c)
	if !ok {
		return
	}
	cc.Carts.With(uid, func(cart *services.Cart) {
		cart.RemoveItem(menuItemID, restID)
	})
	cc.snapshot(c, uid)
}

func (cc *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cc.Carts.With(uid, func(cart *services.Cart) {
		cart.Clear()
	})
	cc.snapshot(c, uid)
}

// cartLineKey reads the (menuItemId, restaurantId) line key from the path
// and query.
func cartLineKey(c *gin.Context) (uint, uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid menu item id")
		return 0, 0, false
	}
	restID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restID <= 0 {
		resp.BadRequest(c, "invalid restaurant id")
		return 0, 0, false
	}
	return uint(id), uint(restID), true
}
