package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// Like reconciliation batch outcomes. The skipped counter carries the
	// skip reason (bad_key, bad_value, missing_post).
	LikeSyncSynced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "like_sync_posts_synced_total",
			Help: "Posts whose like count was written back from cache",
		},
	)

	LikeSyncSkipped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_sync_items_skipped_total",
			Help: "Like counter keys skipped during reconciliation",
		},
		[]string{"reason"},
	)

	LikeSyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "like_sync_runs_total",
			Help: "Reconciliation runs by result",
		},
		[]string{"result"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(LikeSyncSynced)
	prometheus.MustRegister(LikeSyncSkipped)
	prometheus.MustRegister(LikeSyncRuns)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
