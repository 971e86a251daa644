package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit is a per-IP sliding-window limiter kept in process memory.
func RateLimit(rpm int) gin.HandlerFunc {
	var requests sync.Map

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		var timestamps []time.Time
		if value, exists := requests.Load(ip); exists {
			timestamps = value.([]time.Time)
		}

		// concurrent requests for the same IP may hold the same slice, so
		// filtering must never write into the shared backing array
		cutoff := now.Add(-time.Minute)
		valid := make([]time.Time, 0, len(timestamps)+1)
		for _, ts := range timestamps {
			if ts.After(cutoff) {
				valid = append(valid, ts)
			}
		}

		if len(valid) >= rpm {
			requests.Store(ip, valid)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "rate limit exceeded",
			})
			return
		}

		valid = append(valid, now)
		requests.Store(ip, valid)

		c.Next()
	}
}
