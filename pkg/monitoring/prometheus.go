package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	userRegistrations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of user registrations",
		},
	)

	userLogins = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "user_logins_total",
			Help: "Total number of successful logins",
		},
	)

	postsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_created_total",
			Help: "Total number of listings submitted",
		},
	)

	postsModerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "posts_moderated_total",
			Help: "Total number of moderation decisions",
		},
		[]string{"action"},
	)

	commentsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comments_created_total",
			Help: "Total number of comments created",
		},
	)

	reportsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "comment_reports_created_total",
			Help: "Total number of comment reports filed",
		},
	)
)

// PrometheusMiddleware records request counts and latencies per route.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, statusCode).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(duration)
	}
}

func RecordUserRegistration() { userRegistrations.Inc() }

func RecordUserLogin() { userLogins.Inc() }

func RecordPostCreated() { postsCreated.Inc() }

func RecordPostModerated(action string) { postsModerated.WithLabelValues(action).Inc() }

func RecordCommentCreated() { commentsCreated.Inc() }

func RecordReportCreated() { reportsCreated.Inc() }
