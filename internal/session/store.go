package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/service/cache"
)

const (
	// DefaultTTL is how long an idle session is kept.
	DefaultTTL = 2 * time.Hour
	// DefaultCapacity bounds the number of open sessions.
	DefaultCapacity = 50000
)

// Store keeps sessions in memory with an idle timeout.
// The least recently used session is dropped when capacity is reached.
type Store struct {
	sessions *cache.Sharded[*Session]
	newID    func() string
}

// NewStore creates a session store.
func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: cache.NewSharded[*Session]("sessions", capacity, ttl, 16),
		newID:    uuid.NewString,
	}
}

// Create opens a new session with the given cart.
func (st *Store) Create(customerID string, items []model.LineItem) (State, error) {
	s, err := New(st.newID(), customerID, items)
	if err != nil {
		return State{}, err
	}
	st.sessions.Set(s.id, s)
	metrics.SetActiveSessions(st.sessions.Len())
	return s.Snapshot(), nil
}

// Get returns a snapshot of the session.
func (st *Store) Get(id string) (State, error) {
	return st.Do(id, func(*Session) error { return nil })
}

// Do runs fn with exclusive access to the session and returns its state afterwards.
// Accessing a session refreshes its idle timeout. When fn fails the zero State is returned.
func (st *Store) Do(id string, fn func(*Session) error) (State, error) {
	s, ok := st.sessions.Get(id)
	if !ok {
		return State{}, ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return State{}, ErrSessionNotFound
	}

	err := fn(s)
	st.sessions.Set(id, s)
	if err != nil {
		return State{}, err
	}
	return s.Snapshot(), nil
}

// Delete discards a session. It reports whether the session existed.
func (st *Store) Delete(id string) bool {
	s, ok := st.sessions.Get(id)
	if !ok {
		return false
	}
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	st.sessions.Invalidate(id)
	metrics.SetActiveSessions(st.sessions.Len())
	return true
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	return st.sessions.Len()
}

// Stop releases the store's background workers.
func (st *Store) Stop() {
	st.sessions.Stop()
}
