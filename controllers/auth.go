package controllers

import (
	"patidestek/inout"
	"patidestek/middleware"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var authService = &services.AuthService{}

func Register(c *gin.Context) {
	var req inout.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := authService.Register(req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Created(c, resp)
}

func Login(c *gin.Context) {
	var req inout.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := authService.Login(req)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, resp)
}

func Me(c *gin.Context) {
	user, err := authService.Me(middleware.UID(c))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}
