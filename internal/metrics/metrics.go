// Package metrics provides Prometheus collectors for the cart pricing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// ShippingQuotesTotal counts quote computations by outcome (quoted, unavailable, cached).
	ShippingQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_quotes_total",
			Help: "Total number of shipping quote computations",
		},
		[]string{"status"},
	)

	// ShippingQuoteDuration tracks quote computation time.
	ShippingQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "shipping_quote_duration_seconds",
			Help:    "Shipping quote computation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// ShippingQuotesByZone counts available quotes per zone key.
	ShippingQuotesByZone = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipping_quotes_by_zone_total",
			Help: "Available shipping quotes by postal zone",
		},
		[]string{"zone"},
	)

	// CacheOperationsTotal tracks cache operations per named cache.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
		[]string{"cache"},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
		[]string{"cache"},
	)

	// ActiveSessions tracks open cart sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_sessions_active",
			Help: "Number of open cart sessions",
		},
	)

	// SessionTransitionsTotal counts cart session transitions.
	SessionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_session_transitions_total",
			Help: "Total number of cart session transitions",
		},
		[]string{"transition", "result"},
	)

	// CheckoutsTotal counts checkout handoff attempts by result.
	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_checkouts_total",
			Help: "Total number of checkout handoff attempts",
		},
		[]string{"result"},
	)

	// RateLimitRejectionsTotal counts requests rejected by the rate limiters.
	RateLimitRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_rate_limit_rejections_total",
			Help: "Total number of requests rejected by rate limiting",
		},
		[]string{"scope"},
	)

	// RequestLogEntriesTotal counts request log entries by outcome (written, dropped, failed).
	RequestLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_log_entries_total",
			Help: "Total number of request log entries handled by the log writer",
		},
		[]string{"result"},
	)

	// CircuitBreakerState reports breaker state (0 closed, 1 half-open, 2 open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 half-open, 2 open",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordShippingQuote records a quote computation.
func RecordShippingQuote(duration time.Duration, status, zone string) {
	ShippingQuoteDuration.Observe(duration.Seconds())
	ShippingQuotesTotal.WithLabelValues(status).Inc()
	if zone != "" {
		ShippingQuotesByZone.WithLabelValues(zone).Inc()
	}
}

// RecordCacheOperation records an operation on the named cache.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// UpdateCacheMetrics updates size and capacity gauges for the named cache.
func UpdateCacheMetrics(cache string, size, capacity int) {
	CacheSize.WithLabelValues(cache).Set(float64(size))
	CacheCapacity.WithLabelValues(cache).Set(float64(capacity))
}

// SetActiveSessions sets the open session gauge.
func SetActiveSessions(n int) {
	ActiveSessions.Set(float64(n))
}

// RecordSessionTransition records a cart session transition.
func RecordSessionTransition(transition, result string) {
	SessionTransitionsTotal.WithLabelValues(transition, result).Inc()
}

// RecordCheckout records a checkout handoff attempt.
func RecordCheckout(result string) {
	CheckoutsTotal.WithLabelValues(result).Inc()
}

// RecordRateLimitRejection counts a request rejected by the limiter for scope ("ip" or "customer").
func RecordRateLimitRejection(scope string) {
	RateLimitRejectionsTotal.WithLabelValues(scope).Inc()
}

// RecordRequestLogEntries counts n request log entries with the given outcome.
func RecordRequestLogEntries(result string, n int) {
	RequestLogEntriesTotal.WithLabelValues(result).Add(float64(n))
}

// SetCircuitBreakerState publishes the state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}
