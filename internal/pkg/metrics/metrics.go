package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route, and status code.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ReservationsCreated counts successful bookings by status.
	ReservationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_created_total",
			Help: "Reservations created, labelled by status.",
		},
		[]string{"status"},
	)

	// ReservationsCancelled counts cancellations, user-initiated and expiry.
	ReservationsCancelled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reservations_cancelled_total",
			Help: "Reservations cancelled, labelled by reason.",
		},
		[]string{"reason"},
	)

	// SlotConflicts counts bookings lost to the slot uniqueness guard.
	SlotConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reservation_slot_conflicts_total",
			Help: "Booking attempts rejected because the slot was already taken.",
		},
	)
)

// Middleware records request counts and latency per route. The route template
// is used instead of the raw path to keep label cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
