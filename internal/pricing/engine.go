// Package pricing computes shipping quotes and cart summaries.
// Every function here is pure: no I/O, no shared state, inputs are never mutated.
package pricing

import (
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the number of decimal places money is rounded to.
const CurrencyPlaces = 2

// ComputeShipping estimates the delivery fee for cart at postalCode.
// An incomplete postal code yields model.UnavailableQuote.
func ComputeShipping(cart model.CartSnapshot, postalCode string, tariff model.Tariff) model.ShippingQuote {
	digits := NormalizePostalCode(postalCode)
	if len(digits) < PostalCodeDigits {
		return model.UnavailableQuote()
	}

	zoneKey := digits[:1]
	rate, _ := tariff.RateFor(zoneKey)

	distinct := decimal.NewFromInt(int64(cart.DistinctItems()))
	weight := tariff.UnitWeight.Mul(decimal.NewFromInt(int64(cart.TotalQuantity())))

	fee := rate.Base.
		Add(rate.PerItem.Mul(distinct)).
		Add(weight.Mul(tariff.WeightRate))
	fee = decimal.Max(fee, tariff.MinimumFee)

	return model.ShippingQuote{
		Fee:       fee.Round(CurrencyPlaces),
		ZoneKey:   zoneKey,
		Basis:     model.BasisFor(cart, digits, tariff.Version),
		Available: true,
	}
}

// ComputeSummary prices cart under selection using quote for delivery.
// An empty cart is all zeros whatever the mode.
func ComputeSummary(cart model.CartSnapshot, selection model.FulfillmentSelection, quote model.ShippingQuote) model.PricingSummary {
	if cart.IsEmpty() {
		return model.EmptySummary()
	}

	subtotal := Subtotal(cart)
	summary := model.PricingSummary{
		Subtotal:    subtotal,
		ShippingFee: decimal.Zero,
		ItemCount:   cart.TotalQuantity(),
	}

	switch {
	case !selection.Mode.IsDelivery():
		summary.ShippingStatus = model.ShippingWaived
	case !quote.Available:
		summary.ShippingStatus = model.ShippingPending
	default:
		summary.ShippingStatus = model.ShippingQuoted
		summary.ShippingFee = quote.Fee.Round(CurrencyPlaces)
	}

	summary.Total = subtotal.Add(summary.ShippingFee)
	return summary
}

// Subtotal sums unit price times quantity exactly and rounds the result.
func Subtotal(cart model.CartSnapshot) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range cart.Items {
		sum = sum.Add(item.LineTotal())
	}
	return sum.Round(CurrencyPlaces)
}

// Quoter produces a shipping quote for a cart and postal code.
type Quoter interface {
	Quote(cart model.CartSnapshot, postalCode string) model.ShippingQuote
}

// QuoterFunc adapts a function to Quoter.
type QuoterFunc func(cart model.CartSnapshot, postalCode string) model.ShippingQuote

// Quote calls f.
func (f QuoterFunc) Quote(cart model.CartSnapshot, postalCode string) model.ShippingQuote {
	return f(cart, postalCode)
}

// TariffQuoter returns a Quoter bound to tariff.
func TariffQuoter(tariff model.Tariff) Quoter {
	return QuoterFunc(func(cart model.CartSnapshot, postalCode string) model.ShippingQuote {
		return ComputeShipping(cart, postalCode, tariff)
	})
}
