package model

import "github.com/shopspring/decimal"

// QuoteBasis records the inputs a shipping quote was derived from.
// A quote is stale as soon as any of them changes.
type QuoteBasis struct {
	PostalCode    string `json:"postal_code"`
	DistinctItems int    `json:"distinct_items"`
	TotalQuantity int    `json:"total_quantity"`
	TariffVersion int    `json:"tariff_version"`
}

// ShippingQuote is an estimated delivery fee for a cart and postal code.
// A quote with Available == false is the "not enough information yet" state.
type ShippingQuote struct {
	Fee       decimal.Decimal `json:"fee"`
	ZoneKey   string          `json:"zone_key,omitempty"`
	Basis     QuoteBasis      `json:"basis"`
	Available bool            `json:"available"`
}

// UnavailableQuote returns the quote used while the postal code is incomplete.
func UnavailableQuote() ShippingQuote {
	return ShippingQuote{Fee: decimal.Zero}
}

// ValidFor reports whether the quote was computed for exactly this basis.
func (q ShippingQuote) ValidFor(basis QuoteBasis) bool {
	return q.Available && q.Basis == basis
}

// BasisFor builds the quote basis for a cart and an already normalized postal code.
func BasisFor(cart CartSnapshot, normalizedPostalCode string, tariffVersion int) QuoteBasis {
	return QuoteBasis{
		PostalCode:    normalizedPostalCode,
		DistinctItems: cart.DistinctItems(),
		TotalQuantity: cart.TotalQuantity(),
		TariffVersion: tariffVersion,
	}
}
