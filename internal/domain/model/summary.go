package model

import "github.com/shopspring/decimal"

// ShippingStatus describes how the shipping fee in a summary was resolved.
type ShippingStatus string

const (
	// ShippingNone is used for an empty cart.
	ShippingNone ShippingStatus = "none"
	// ShippingWaived is used for pickup orders.
	ShippingWaived ShippingStatus = "waived"
	// ShippingPending means delivery was chosen but no quote is available yet.
	ShippingPending ShippingStatus = "pending"
	// ShippingQuoted means the fee comes from an available quote.
	ShippingQuoted ShippingStatus = "quoted"
)

// PricingSummary is the priced view of a cart. It is always recomputed, never stored.
type PricingSummary struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	ShippingFee    decimal.Decimal `json:"shipping_fee"`
	ShippingStatus ShippingStatus  `json:"shipping_status"`
	Total          decimal.Decimal `json:"total"`
	ItemCount      int             `json:"item_count"`
}

// EmptySummary returns the summary of an empty cart.
func EmptySummary() PricingSummary {
	return PricingSummary{
		Subtotal:       decimal.Zero,
		ShippingFee:    decimal.Zero,
		ShippingStatus: ShippingNone,
		Total:          decimal.Zero,
	}
}

// ShippingResolved reports whether the shipping fee is part of the total.
func (s PricingSummary) ShippingResolved() bool {
	return s.ShippingStatus != ShippingPending
}
