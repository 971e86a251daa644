package controllers

import (
	"net/http"
	"strconv"

	"patidestek/pkg/response"

	"github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter, answering 400 itself on failure.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
