// Package observability defines the service's Prometheus metrics and the
// HTTP middleware that feeds the request-level ones.
package observability

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DeliveriesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swiftbid",
		Name:      "deliveries_created_total",
		Help:      "Total number of delivery requests published",
	})
	BidsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swiftbid",
		Name:      "bids_submitted_total",
		Help:      "Total number of bids placed",
	})
	MatchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swiftbid",
		Name:      "matches_total",
		Help:      "Total number of accepted bids",
	})
	StaleDeliveriesCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "swiftbid",
		Name:      "stale_deliveries_cancelled_total",
		Help:      "Total number of deliveries cancelled by the reaper job",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swiftbid",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "swiftbid",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Middleware records per-request count and latency, labeled by the route
// template rather than the raw path so IDs do not explode cardinality.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			status := strconv.Itoa(ctx.Response().Status)

			HTTPRequestsTotal.WithLabelValues(ctx.Request().Method, path, status).Inc()
			HTTPRequestDuration.WithLabelValues(ctx.Request().Method, path, status).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}
