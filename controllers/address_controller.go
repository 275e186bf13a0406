package controllers

import (
	"github.com/g-anupam/next-delivery/entity"
	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/repository"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
)

type AddressController struct {
	Repo *repository.AddressRepository
}

func NewAddressController(repo *repository.AddressRepository) *AddressController {
	return &AddressController{Repo: repo}
}

// GET /users/addresses
func (ac *AddressController) List(c *gin.Context) {
	items, err := ac.Repo.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

type createAddressReq struct {
	FirstLine  string `json:"firstLine" binding:"required"`
	SecondLine string `json:"secondLine"`
	City       string `json:"city" binding:"required"`
	Pincode    string `json:"pincode" binding:"required"`
}

// POST /users/addresses
func (ac *AddressController) Create(c *gin.Context) {
	var req createAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	a := &entity.Address{
		FirstLine:  req.FirstLine,
		SecondLine: req.SecondLine,
		City:       req.City,
		Pincode:    req.Pincode,
		UserID:     utils.CurrentUserID(c),
	}
	if err := ac.Repo.Create(a); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, a)
}
