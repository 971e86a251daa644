package middleware

import (
	"net/http"
	"runtime/debug"

	"patidestek/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery converts panics into 500 responses. A failed request never takes
// the process down with it.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"panic":      recovered,
			"path":       c.Request.URL.Path,
			"request_id": c.GetString("request_id"),
		}).Error(string(debug.Stack()))

		response.Abort(c, http.StatusInternalServerError, "internal server error")
	})
}
