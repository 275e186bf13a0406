package controllers

import (
	"github.com/g-anupam/next-delivery/pkg/resp"
	"github.com/g-anupam/next-delivery/services"
	"github.com/g-anupam/next-delivery/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

func (ac *AuthController) Signup(c *gin.Context) {
	var req services.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := ac.Auth.Register(&req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "email": user.Email, "role": user.Role})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	token, user, err := ac.Auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": gin.H{"id": user.ID, "name": user.Name, "role": user.Role}})
}

// Logout is a no-op server side; the token lives with the client.
func (ac *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Auth.Profile(utils.CurrentUserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, user)
}
