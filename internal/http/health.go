package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/circuitbreaker"
)

const defaultProbeTimeout = 2 * time.Second

// HealthChecker probes one dependency.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthCheckFunc adapts a function such as a MongoDB ping to HealthChecker.
type HealthCheckFunc func(ctx context.Context) error

// Check calls f.
func (f HealthCheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// SessionCounter reports the number of live cart sessions.
type SessionCounter interface {
	Len() int
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	checkers        map[string]HealthChecker
	circuitBreakers map[string]*circuitbreaker.CircuitBreaker
	sessions        SessionCounter
	probeTimeout    time.Duration
}

// NewHealthHandler creates a HealthHandler with no dependencies registered.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		checkers:        make(map[string]HealthChecker),
		circuitBreakers: make(map[string]*circuitbreaker.CircuitBreaker),
		probeTimeout:    defaultProbeTimeout,
	}
}

// RegisterCircuitBreaker reports cb's state as "<name>_circuit".
func (h *HealthHandler) RegisterCircuitBreaker(name string, cb *circuitbreaker.CircuitBreaker) {
	h.circuitBreakers[name] = cb
}

// RegisterChecker adds a dependency probe to readiness.
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	h.checkers[name] = checker
}

// SetSessionCounter makes readiness report the live session count.
func (h *HealthHandler) SetSessionCounter(sessions SessionCounter) {
	h.sessions = sessions
}

// Register mounts /healthz and /readyz.
func (h *HealthHandler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Liveness)
	router.GET("/readyz", h.Readiness)
}

// Liveness handles the liveness probe endpoint.
// @Summary     Liveness probe
// @Description Returns OK while the process is serving. Prometheus metrics are at /metrics.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type readinessReport struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Sessions *int              `json:"sessions,omitempty"`
}

// Readiness handles the readiness probe endpoint.
// @Summary     Readiness probe
// @Description Probes every registered dependency in parallel and reports circuit breaker states. Any failure or open circuit turns the answer into 503.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]interface{} "Service is ready"
// @Failure     503 {object} map[string]interface{} "Service is not ready"
// @Router      /readyz [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	report := readinessReport{Status: "ok", Checks: h.probe(c.Request.Context())}

	healthy := true
	for _, result := range report.Checks {
		if result != "ok" {
			healthy = false
		}
	}
	for name, cb := range h.circuitBreakers {
		stats := cb.GetStats()
		report.Checks[name+"_circuit"] = stats.State
		healthy = healthy && stats.IsHealthy
	}

	if len(report.Checks) == 0 {
		report.Checks["service"] = "ok"
	}
	if h.sessions != nil {
		n := h.sessions.Len()
		report.Sessions = &n
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
		report.Status = "degraded"
	}
	c.JSON(status, report)
}

// probe runs every checker concurrently, each bounded by probeTimeout.
func (h *HealthHandler) probe(ctx context.Context) map[string]string {
	results := make(map[string]string, len(h.checkers)+len(h.circuitBreakers))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for name, checker := range h.checkers {
		wg.Add(1)
		go func(name string, checker HealthChecker) {
			defer wg.Done()
			probeCtx, cancel := context.WithTimeout(ctx, h.probeTimeout)
			defer cancel()

			result := "ok"
			if err := checker.Check(probeCtx); err != nil {
				result = err.Error()
			}
			mu.Lock()
			results[name] = result
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()
	return results
}
