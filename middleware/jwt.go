package middleware

import (
	"net/http"
	"strings"

	"patidestek/pkg/jwt"
	"patidestek/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the bearer token and stores the caller's id and token role
// on the context. It runs before any ban or role gate.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if strings.HasPrefix(token, "Bearer ") {
			token = token[7:]
		}

		claims, err := jwt.ParseToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Abort(c, http.StatusUnauthorized, "token expired")
				return
			}
			response.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set("uid", claims.UID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// UID returns the authenticated user id set by Auth.
func UID(c *gin.Context) int {
	return c.GetInt("uid")
}
