package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/service/cache"
)

// Rate limit response headers.
const (
	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
	RateLimitResetHeader     = "X-RateLimit-Reset"
)

// maxTrackedCallers bounds limiter memory; the least recently seen caller is forgotten first.
const maxTrackedCallers = 100000

// callerWindow is one caller's fixed window.
type callerWindow struct {
	mu      sync.Mutex
	started time.Time
	used    int
}

// take consumes one request from the window, starting a new window when the old one has ended.
// renewed reports that a new window started with this request.
func (w *callerWindow) take(now time.Time, rate int, window time.Duration) (allowed, renewed bool, remaining int, reset time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started.IsZero() || now.Sub(w.started) >= window {
		w.started = now
		w.used = 0
		renewed = true
	}
	reset = window - now.Sub(w.started)

	if w.used >= rate {
		return false, renewed, 0, reset
	}
	w.used++
	return true, renewed, rate - w.used, reset
}

// RateLimiter allows rate requests per window for each caller.
// Callers are kept in a sharded TTL cache so idle ones expire on their own.
type RateLimiter struct {
	rate     int
	window   time.Duration
	callers  *cache.Sharded[*callerWindow]
	createMu sync.Mutex
	now      func() time.Time
}

// NewRateLimiter creates a limiter allowing rate requests per window.
func NewRateLimiter(rate int, window time.Duration) *RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		rate:    rate,
		window:  window,
		callers: cache.NewSharded[*callerWindow]("rate_limit", maxTrackedCallers, 2*window, 0),
		now:     time.Now,
	}
}

func (rl *RateLimiter) windowFor(identifier string) *callerWindow {
	if w, ok := rl.callers.Get(identifier); ok {
		return w
	}
	rl.createMu.Lock()
	defer rl.createMu.Unlock()
	if w, ok := rl.callers.Get(identifier); ok {
		return w
	}
	w := &callerWindow{}
	rl.callers.Set(identifier, w)
	return w
}

// Allow consumes one request for identifier.
func (rl *RateLimiter) Allow(identifier string) (allowed bool, remaining int, reset time.Duration) {
	w := rl.windowFor(identifier)
	allowed, renewed, remaining, reset := w.take(rl.now(), rl.rate, rl.window)
	if renewed {
		// The cache entry must outlive the window that just started.
		rl.callers.Set(identifier, w)
	}
	return allowed, remaining, reset
}

// RateLimit returns a middleware that limits requests per client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.limit(c, "ip", "ip:"+c.ClientIP())
	}
}

// UserRateLimit limits requests per authenticated customer, or per IP for anonymous shoppers.
func (rl *RateLimiter) UserRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if customerID := GetCustomerID(c); customerID != "" {
			rl.limit(c, "customer", "customer:"+customerID)
			return
		}
		rl.limit(c, "ip", "ip:"+c.ClientIP())
	}
}

func (rl *RateLimiter) limit(c *gin.Context, scope, identifier string) {
	allowed, remaining, reset := rl.Allow(identifier)
	resetSeconds := strconv.Itoa(int(math.Ceil(reset.Seconds())))

	c.Header(RateLimitLimitHeader, strconv.Itoa(rl.rate))
	c.Header(RateLimitRemainingHeader, strconv.Itoa(remaining))
	c.Header(RateLimitResetHeader, resetSeconds)

	if !allowed {
		metrics.RecordRateLimitRejection(scope)
		c.Header("Retry-After", resetSeconds)
		abortWithError(c, http.StatusTooManyRequests, i18n.ErrKeyRateLimitExceeded)
		return
	}

	c.Next()
}

// Callers returns the number of callers currently tracked.
func (rl *RateLimiter) Callers() int {
	return rl.callers.Len()
}

// Stop releases the limiter's background cleanup.
func (rl *RateLimiter) Stop() {
	rl.callers.Stop()
}
