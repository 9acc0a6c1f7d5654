// Package session holds the per-page cart state and applies the transitions
// that drive repricing: quantity changes, removals, mode toggles and postal code entry.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
)

var (
	// ErrSessionNotFound is returned when the session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found")
	// ErrItemNotFound is returned when a line item is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
	// ErrInvalidQuantity is returned for quantities outside 1..model.MaxQuantity.
	ErrInvalidQuantity = errors.New("quantity out of range")
	// ErrInvalidItem is returned for line items that break the cart invariants.
	ErrInvalidItem = errors.New("invalid line item")
	// ErrAddressRequired is returned when a saved address lacks a postal code.
	ErrAddressRequired = errors.New("address postal code is required")
)

// Session is one customer's cart page state. Every transition is a full
// recompute of the shipping quote; the summary is derived on demand.
//
// Session is not safe for concurrent use on its own; Store.Do serializes access.
type Session struct {
	mu sync.Mutex

	id           string
	customerID   string
	cart         model.CartSnapshot
	mode         model.FulfillmentMode
	savedAddress *model.Address
	manualPostal string
	source       model.AddressSource
	quote        model.ShippingQuote
	revision     int
	createdAt    time.Time
	updatedAt    time.Time
	closed       bool
}

// New creates a session in pickup mode with the given cart.
func New(id, customerID string, items []model.LineItem) (*Session, error) {
	if err := ValidateItems(items); err != nil {
		return nil, err
	}
	ts := time.Now().UTC()
	return &Session{
		id:         id,
		customerID: customerID,
		cart:       model.NewCartSnapshot(items),
		mode:       model.ModePickup,
		quote:      model.UnavailableQuote(),
		createdAt:  ts,
		updatedAt:  ts,
	}, nil
}

// ValidateItems enforces the quantity range, unit price >= 0 and unique non-empty IDs.
func ValidateItems(items []model.LineItem) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d has no id", ErrInvalidItem, i)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidItem, item.ID)
		}
		seen[item.ID] = struct{}{}
		if !validQuantity(item.Quantity) {
			return fmt.Errorf("%w: %s", ErrInvalidQuantity, item.ID)
		}
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: negative unit price for %s", ErrInvalidItem, item.ID)
		}
	}
	return nil
}

func validQuantity(q int) bool {
	return q >= 1 && q <= model.MaxQuantity
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// OwnedBy reports whether customerID may access the session.
// Anonymous sessions are open to any caller holding the ID.
func (s *Session) OwnedBy(customerID string) bool {
	return s.customerID == "" || s.customerID == customerID
}

// PostalCode returns the postal code currently in effect, normalized.
func (s *Session) PostalCode() string {
	switch s.source {
	case model.AddressSaved:
		if s.savedAddress != nil {
			return pricing.NormalizePostalCode(s.savedAddress.PostalCode)
		}
	case model.AddressManual:
		return s.manualPostal
	}
	return ""
}

// Selection returns the fulfillment selection in effect.
func (s *Session) Selection() model.FulfillmentSelection {
	return model.FulfillmentSelection{Mode: s.mode, PostalCode: s.PostalCode()}
}

// Summary prices the cart with the current selection and quote.
func (s *Session) Summary() model.PricingSummary {
	return pricing.ComputeSummary(s.cart, s.Selection(), s.quote)
}

// CheckoutEnabled reports whether the cart can proceed to checkout.
func (s *Session) CheckoutEnabled() bool {
	return !s.cart.IsEmpty()
}

// ReplaceItems swaps in a freshly fetched cart snapshot.
func (s *Session) ReplaceItems(items []model.LineItem, q pricing.Quoter) error {
	if err := ValidateItems(items); err != nil {
		return err
	}
	s.cart = model.NewCartSnapshot(items)
	s.requote(q)
	s.touch()
	return nil
}

// ChangeQuantity sets the quantity of one line item.
func (s *Session) ChangeQuantity(itemID string, quantity int, q pricing.Quoter) error {
	if !validQuantity(quantity) {
		return ErrInvalidQuantity
	}
	idx := s.cart.Find(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}
	cart := s.cart.Clone()
	cart.Items[idx].Quantity = quantity
	s.cart = cart
	s.requote(q)
	s.touch()
	return nil
}

// RemoveItem drops one line item from the cart.
func (s *Session) RemoveItem(itemID string, q pricing.Quoter) error {
	idx := s.cart.Find(itemID)
	if idx < 0 {
		return ErrItemNotFound
	}
	items := make([]model.LineItem, 0, len(s.cart.Items)-1)
	items = append(items, s.cart.Items[:idx]...)
	items = append(items, s.cart.Items[idx+1:]...)
	s.cart = model.CartSnapshot{Items: items}
	s.requote(q)
	s.touch()
	return nil
}

// Clear empties the cart.
func (s *Session) Clear() {
	s.cart = model.NewCartSnapshot(nil)
	s.quote = model.UnavailableQuote()
	s.touch()
}

// SetMode toggles between pickup and delivery.
// Entering delivery quotes with the known postal code; entering pickup drops any quote.
func (s *Session) SetMode(mode model.FulfillmentMode, q pricing.Quoter) {
	s.mode = mode
	s.requote(q)
	s.touch()
}

// EnterPostalCode switches to a manually typed postal code and re-quotes.
// A partial code leaves shipping pending until it is complete.
func (s *Session) EnterPostalCode(postalCode string, q pricing.Quoter) {
	s.source = model.AddressManual
	s.manualPostal = pricing.NormalizePostalCode(postalCode)
	s.requote(q)
	s.touch()
}

// UseSavedAddress records the customer's stored address and selects it.
func (s *Session) UseSavedAddress(addr model.Address, q pricing.Quoter) error {
	if pricing.NormalizePostalCode(addr.PostalCode) == "" {
		return ErrAddressRequired
	}
	saved := addr
	s.savedAddress = &saved
	s.source = model.AddressSaved
	s.requote(q)
	s.touch()
	return nil
}

// Reprice re-quotes against q, typically after a tariff change.
// It reports whether the quote changed; the revision only moves when it did.
func (s *Session) Reprice(q pricing.Quoter) bool {
	before := s.quote
	s.requote(q)
	if sameQuote(before, s.quote) {
		return false
	}
	s.touch()
	return true
}

func (s *Session) requote(q pricing.Quoter) {
	if !s.mode.IsDelivery() || s.cart.IsEmpty() || q == nil {
		s.quote = model.UnavailableQuote()
		return
	}
	s.quote = q.Quote(s.cart, s.PostalCode())
}

func (s *Session) touch() {
	s.revision++
	s.updatedAt = time.Now().UTC()
}

func sameQuote(a, b model.ShippingQuote) bool {
	return a.Available == b.Available &&
		a.ZoneKey == b.ZoneKey &&
		a.Basis == b.Basis &&
		a.Fee.Equal(b.Fee)
}

// State is an immutable copy of a session taken under its lock.
type State struct {
	ID              string
	CustomerID      string
	Cart            model.CartSnapshot
	Selection       model.FulfillmentSelection
	AddressSource   model.AddressSource
	SavedAddress    *model.Address
	Quote           model.ShippingQuote
	Summary         model.PricingSummary
	CheckoutEnabled bool
	Revision        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot copies the session into a State.
func (s *Session) Snapshot() State {
	var saved *model.Address
	if s.savedAddress != nil {
		addr := *s.savedAddress
		saved = &addr
	}
	return State{
		ID:              s.id,
		CustomerID:      s.customerID,
		Cart:            s.cart.Clone(),
		Selection:       s.Selection(),
		AddressSource:   s.source,
		SavedAddress:    saved,
		Quote:           s.quote,
		Summary:         s.Summary(),
		CheckoutEnabled: s.CheckoutEnabled(),
		Revision:        s.revision,
		CreatedAt:       s.createdAt,
		UpdatedAt:       s.updatedAt,
	}
}
