package controllers

import (
	"patidestek/inout"
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

var userService = &services.UserService{}

func ListUsers(c *gin.Context) {
	users, err := userService.List()
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, users)
}

func UpdateUserRole(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.UpdateRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := userService.SetRole(c.Request.Context(), id, req.Role)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}

func UpdateUserBan(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req inout.UpdateBanReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := userService.SetBanned(c.Request.Context(), id, *req.IsBanned)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, user)
}
