package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

func rateLimitedEngine(rpm int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rpm))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	r := rateLimitedEngine(5)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d got %d, want 200", i+1, w.Code)
		}
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("request over the limit got %d, want 429", w.Code)
	}
}

// Every goroutine shares one client IP, so the window slice for that key is
// read and rebuilt concurrently. The filter must copy rather than write into
// the shared backing array; the race detector covers the rest.
func TestRateLimitConcurrentSameIP(t *testing.T) {
	r := rateLimitedEngine(100)

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				w := httptest.NewRecorder()
				r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
				if w.Code != http.StatusOK && w.Code != http.StatusTooManyRequests {
					t.Errorf("unexpected status %d", w.Code)
					return
				}
			}
		}()
	}
	wg.Wait()
}
