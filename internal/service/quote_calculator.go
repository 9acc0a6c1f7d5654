package service

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/service/cache"
)

// QuoteCacheName labels the quote cache in metrics.
const QuoteCacheName = "quotes"

// QuoteCalculator quotes shipping against the tariff currently in effect.
type QuoteCalculator interface {
	pricing.Quoter
	// QuoteWithTariff quotes against an explicit tariff, bypassing the cache.
	QuoteWithTariff(cart model.CartSnapshot, postalCode string, tariff model.Tariff) model.ShippingQuote
	Tariff() model.Tariff
	// SetTariff swaps the tariff in effect and drops every cached quote.
	SetTariff(tariff model.Tariff)
	// InvalidateCache clears the quote cache.
	InvalidateCache()
}

// Option configures a QuoteCalculatorService.
type Option func(*QuoteCalculatorService)

// QuoteCalculatorService implements QuoteCalculator on top of the pure pricing engine.
// Quotes are cached by zone, line count, quantity and tariff version, which is
// everything the fee depends on.
type QuoteCalculatorService struct {
	mu     sync.RWMutex
	tariff model.Tariff
	cache  cache.Cache[model.ShippingQuote]
}

// NewQuoteCalculatorService creates a calculator using the default tariff unless overridden.
func NewQuoteCalculatorService(opts ...Option) *QuoteCalculatorService {
	s := &QuoteCalculatorService{
		tariff: pricing.DefaultTariff(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithTariff sets the initial tariff.
func WithTariff(tariff model.Tariff) Option {
	return func(s *QuoteCalculatorService) {
		s.tariff = tariff.Clone()
	}
}

// WithCache enables quote caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *QuoteCalculatorService) {
		if capacity > 0 {
			s.cache = cache.NewSharded[model.ShippingQuote](QuoteCacheName, capacity, ttl, 0)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache[model.ShippingQuote]) Option {
	return func(s *QuoteCalculatorService) {
		s.cache = c
	}
}

// Quote prices shipping for cart at postalCode with the current tariff.
func (s *QuoteCalculatorService) Quote(cart model.CartSnapshot, postalCode string) model.ShippingQuote {
	start := time.Now()

	s.mu.RLock()
	tariff := s.tariff
	s.mu.RUnlock()

	digits := pricing.NormalizePostalCode(postalCode)
	if len(digits) < pricing.PostalCodeDigits {
		metrics.RecordShippingQuote(time.Since(start), "unavailable", "")
		return model.UnavailableQuote()
	}

	key := quoteCacheKey(digits[:1], cart, tariff.Version)
	if s.cache != nil {
		if quote, ok := s.cache.Get(key); ok {
			quote.Basis = model.BasisFor(cart, digits, tariff.Version)
			metrics.RecordShippingQuote(time.Since(start), "cached", quote.ZoneKey)
			return quote
		}
	}

	quote := pricing.ComputeShipping(cart, digits, tariff)

	if s.cache != nil {
		s.cache.Set(key, quote)
	}
	metrics.RecordShippingQuote(time.Since(start), "quoted", quote.ZoneKey)

	return quote
}

// QuoteWithTariff prices shipping against tariff without touching the cache.
func (s *QuoteCalculatorService) QuoteWithTariff(cart model.CartSnapshot, postalCode string, tariff model.Tariff) model.ShippingQuote {
	return pricing.ComputeShipping(cart, postalCode, tariff)
}

// Tariff returns a copy of the tariff in effect.
func (s *QuoteCalculatorService) Tariff() model.Tariff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tariff.Clone()
}

// SetTariff replaces the tariff in effect.
func (s *QuoteCalculatorService) SetTariff(tariff model.Tariff) {
	s.mu.Lock()
	s.tariff = tariff.Clone()
	s.mu.Unlock()
	s.InvalidateCache()
}

// InvalidateCache clears the quote cache.
func (s *QuoteCalculatorService) InvalidateCache() {
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Stop releases the cache's background cleanup.
func (s *QuoteCalculatorService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

func quoteCacheKey(zone string, cart model.CartSnapshot, version int) string {
	var b strings.Builder
	b.Grow(24)
	b.WriteString(zone)
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cart.DistinctItems()))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(cart.TotalQuantity()))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(version))
	return b.String()
}
