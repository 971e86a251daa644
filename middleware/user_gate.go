package middleware

import (
	"errors"
	"net/http"

	"patidestek/db"
	"patidestek/model"
	"patidestek/pkg/cache"
	"patidestek/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// fetchUserState resolves the caller's current role and ban flag, preferring
// the redis snapshot so that gates stay cheap under load. Role and ban
// changes invalidate the cache entry, so a stale read window is bounded by
// the cache TTL only when invalidation itself failed.
func fetchUserState(c *gin.Context, uid int) (*cache.UserState, error) {
	ctx := c.Request.Context()
	if state, ok := cache.GetUserState(ctx, uid); ok {
		return state, nil
	}

	var user model.User
	if err := db.Dao.First(&user, uid).Error; err != nil {
		return nil, err
	}

	state := cache.UserState{Role: user.Role, Banned: user.IsBanned}
	cache.SetUserState(ctx, uid, state)
	return &state, nil
}

// NotBanned blocks content-mutating actions for banned accounts. Runs after
// Auth, before the handler.
func NotBanned() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := fetchUserState(c, UID(c))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusUnauthorized, "account no longer exists")
				return
			}
			response.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if state.Banned {
			response.Abort(c, http.StatusForbidden, "account is banned")
			return
		}
		c.Next()
	}
}

// AdminOnly requires the caller's current role to be ADMIN. The live role is
// checked, not the token claim, so demotions take effect immediately.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := fetchUserState(c, UID(c))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort(c, http.StatusUnauthorized, "account no longer exists")
				return
			}
			response.Abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if state.Role != model.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}
