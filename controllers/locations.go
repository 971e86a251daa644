package controllers

import (
	"patidestek/pkg/response"
	"patidestek/services"

	"github.com/gin-gonic/gin"
)

func ListProvinces(c *gin.Context) {
	response.Success(c, services.Location.Provinces())
}

func ListDistricts(c *gin.Context) {
	response.Success(c, services.Location.Districts(c.Query("provinceCode")))
}

func ListNeighbourhoods(c *gin.Context) {
	response.Success(c, services.Location.Neighbourhoods(
		c.Query("provinceCode"),
		c.Query("districtCode"),
	))
}
