// Package middleware provides HTTP middleware components for the cart pricing service.
package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/service/cache"
)

const (
	// IdempotencyKeyHeader is the HTTP header name for idempotency key (RFC standard).
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the idempotency store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// IdempotencyKeyTTL is how long a completed response can be replayed.
	IdempotencyKeyTTL = 5 * time.Minute
	// IdempotencyCapacity bounds the number of stored responses.
	IdempotencyCapacity = 10000
)

// storedResponse is a completed 2xx response and the fingerprint of the request that produced it.
type storedResponse struct {
	Fingerprint string
	StatusCode  int
	ContentType string
	Body        []byte
}

// IdempotencyStore remembers completed responses per idempotency scope and
// tracks requests still in flight.
type IdempotencyStore struct {
	responses cache.Cache[storedResponse]
	mu        sync.Mutex
	inFlight  map[string]struct{}
}

// NewIdempotencyStore creates a store keeping responses for ttl.
func NewIdempotencyStore(capacity int, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{
		responses: cache.NewTTL[storedResponse]("idempotency", capacity, ttl),
		inFlight:  make(map[string]struct{}),
	}
}

// begin claims scope. It fails when another request with the same scope is running.
func (s *IdempotencyStore) begin(scope string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[scope]; busy {
		return false
	}
	s.inFlight[scope] = struct{}{}
	return true
}

func (s *IdempotencyStore) end(scope string) {
	s.mu.Lock()
	delete(s.inFlight, scope)
	s.mu.Unlock()
}

// Stop releases the store's background cleanup.
func (s *IdempotencyStore) Stop() {
	s.responses.Stop()
}

// IdempotencyConfig holds configuration for idempotency middleware.
type IdempotencyConfig struct {
	Store   *IdempotencyStore
	Enabled bool
}

// DefaultIdempotencyConfig returns default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		Store:   NewIdempotencyStore(IdempotencyCapacity, IdempotencyKeyTTL),
		Enabled: true,
	}
}

// Idempotency replays the stored response when a POST, PUT or PATCH repeats an Idempotency-Key.
//
// Keys are scoped to the caller (customer id when authenticated), the route and the
// session id, so two shoppers cannot collide. Reusing a key with a different body is
// rejected with 422, and a repeat that arrives while the first is still running gets 409.
// Only 2xx responses are stored; a failed checkout can be retried with the same key.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	store := cfg.Store

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
		default:
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}

		scope := idempotencyScope(c, key)
		fingerprint := requestFingerprint(c.Request)

		if replayStored(c, store, scope, fingerprint) {
			return
		}

		if !store.begin(scope) {
			abortWithError(c, http.StatusConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		}
		defer store.end(scope)

		// The first request may have finished between the lookup and the claim.
		if replayStored(c, store, scope, fingerprint) {
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder

		c.Next()

		if status := recorder.Status(); status >= 200 && status < 300 {
			store.responses.Set(scope, storedResponse{
				Fingerprint: fingerprint,
				StatusCode:  status,
				ContentType: recorder.Header().Get("Content-Type"),
				Body:        recorder.body.Bytes(),
			})
		}
	}
}

// replayStored writes the stored response for scope, if any, and reports whether it did.
func replayStored(c *gin.Context, store *IdempotencyStore, scope, fingerprint string) bool {
	stored, ok := store.responses.Get(scope)
	if !ok {
		return false
	}
	if stored.Fingerprint != fingerprint {
		abortWithError(c, http.StatusUnprocessableEntity, i18n.ErrKeyIdempotencyKeyReused)
		return true
	}
	c.Header(IdempotencyReplayedHeader, "true")
	c.Data(stored.StatusCode, stored.ContentType, stored.Body)
	c.Abort()
	return true
}

func idempotencyScope(c *gin.Context, key string) string {
	return strings.Join([]string{
		GetCustomerID(c),
		c.Request.Method,
		c.FullPath(),
		c.Param("id"),
		key,
	}, "|")
}

// requestFingerprint hashes the body and restores it for the handler.
func requestFingerprint(req *http.Request) string {
	hasher := sha256.New()
	hasher.Write([]byte(req.URL.RawQuery))
	if req.Body != nil {
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		hasher.Write(body)
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

// bodyRecorder tees the response body so it can be stored.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
