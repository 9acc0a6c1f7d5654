// Package model defines the core domain entities for the cart pricing service.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxQuantity caps a single line's quantity.
const MaxQuantity = 9999

// LineItem is one product entry in the cart.
//
// @Description Cart line item as returned by the storefront backend
type LineItem struct {
	// ID is the product identifier.
	ID string `json:"id" example:"42"`
	// Name is the product display name.
	Name string `json:"name,omitempty" example:"Whey Protein 900g"`
	// UnitPrice is the price of a single unit.
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"number" example:"49.90"`
	// Quantity is between 1 and MaxQuantity.
	Quantity int `json:"quantity" example:"2"`
}

// LineTotal returns UnitPrice * Quantity without rounding.
func (i LineItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartSnapshot is an ordered collection of line items.
// Pricing over a snapshot is order-independent.
type CartSnapshot struct {
	Items []LineItem `json:"items"`
}

// NewCartSnapshot copies items into a new snapshot.
func NewCartSnapshot(items []LineItem) CartSnapshot {
	copied := make([]LineItem, len(items))
	copy(copied, items)
	return CartSnapshot{Items: copied}
}

// IsEmpty reports whether the cart has no line items.
func (c CartSnapshot) IsEmpty() bool {
	return len(c.Items) == 0
}

// DistinctItems returns the number of line items.
func (c CartSnapshot) DistinctItems() int {
	return len(c.Items)
}

// TotalQuantity returns the sum of all quantities.
func (c CartSnapshot) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// Find returns the index of the item with the given ID, or -1.
func (c CartSnapshot) Find(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the snapshot.
func (c CartSnapshot) Clone() CartSnapshot {
	return NewCartSnapshot(c.Items)
}

// FulfillmentMode selects between store pickup and home delivery.
type FulfillmentMode string

const (
	// ModePickup means the customer collects the order; shipping is free.
	ModePickup FulfillmentMode = "RETIRADA"
	// ModeDelivery means the order ships to a postal code.
	ModeDelivery FulfillmentMode = "ENTREGA"
)

// ParseFulfillmentMode accepts the storefront values and their English aliases.
func ParseFulfillmentMode(s string) (FulfillmentMode, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ModePickup), "PICKUP":
		return ModePickup, true
	case string(ModeDelivery), "DELIVERY":
		return ModeDelivery, true
	default:
		return "", false
	}
}

// IsDelivery reports whether the mode requires shipping.
func (m FulfillmentMode) IsDelivery() bool {
	return m == ModeDelivery
}

// FulfillmentSelection is the customer's choice of fulfillment.
// PostalCode only matters when Mode is ModeDelivery.
type FulfillmentSelection struct {
	Mode       FulfillmentMode `json:"mode"`
	PostalCode string          `json:"postal_code,omitempty"`
}

// Pickup returns a pickup selection.
func Pickup() FulfillmentSelection {
	return FulfillmentSelection{Mode: ModePickup}
}

// Delivery returns a delivery selection for the given postal code.
func Delivery(postalCode string) FulfillmentSelection {
	return FulfillmentSelection{Mode: ModeDelivery, PostalCode: postalCode}
}
