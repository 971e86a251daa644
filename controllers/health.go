package controllers

import (
	"net/http"
	"time"

	"patidestek/db"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "patidestek-api",
		"timestamp": time.Now(),
		"database":  db.Stats(),
	})
}
