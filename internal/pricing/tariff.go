package pricing

import (
	"errors"
	"fmt"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Default tariff constants.
var (
	// DefaultUnitWeight is the placeholder weight attributed to each unit.
	DefaultUnitWeight = decimal.RequireFromString("0.5")
	// DefaultWeightRate converts weight into fee.
	DefaultWeightRate = decimal.RequireFromString("0.5")
	// DefaultMinimumFee is the floor applied to every delivery quote.
	DefaultMinimumFee = decimal.RequireFromString("15.00")
	// DefaultFallbackRate applies to leading digits without a zone entry.
	DefaultFallbackRate = model.NewZoneRate(30.00, 2.50)
)

var (
	// ErrInvalidZoneKey is returned when a zone key is not a single digit.
	ErrInvalidZoneKey = errors.New("zone key must be a single digit")
	// ErrNegativeRate is returned when a tariff amount is negative.
	ErrNegativeRate = errors.New("tariff amounts must not be negative")
)

// DefaultTariff returns the storefront's built-in zone table.
func DefaultTariff() model.Tariff {
	return model.Tariff{
		Zones: map[string]model.ZoneRate{
			"0": model.NewZoneRate(30.00, 2.50),
			"1": model.NewZoneRate(25.00, 2.00),
			"2": model.NewZoneRate(20.00, 1.50),
			"3": model.NewZoneRate(18.00, 1.20),
			"4": model.NewZoneRate(12.00, 1.00),
			"8": model.NewZoneRate(22.00, 1.80),
			"9": model.NewZoneRate(25.00, 2.00),
		},
		Fallback:   DefaultFallbackRate,
		UnitWeight: DefaultUnitWeight,
		WeightRate: DefaultWeightRate,
		MinimumFee: DefaultMinimumFee,
		Version:    0,
	}
}

// ValidateTariff checks zone keys and that no amount is negative.
func ValidateTariff(t model.Tariff) error {
	for key, rate := range t.Zones {
		if !IsZoneKey(key) {
			return fmt.Errorf("%w: %q", ErrInvalidZoneKey, key)
		}
		if rate.Base.IsNegative() || rate.PerItem.IsNegative() {
			return fmt.Errorf("%w: zone %s", ErrNegativeRate, key)
		}
	}
	if t.Fallback.Base.IsNegative() || t.Fallback.PerItem.IsNegative() {
		return fmt.Errorf("%w: fallback", ErrNegativeRate)
	}
	if t.UnitWeight.IsNegative() || t.WeightRate.IsNegative() || t.MinimumFee.IsNegative() {
		return fmt.Errorf("%w: weight or minimum fee", ErrNegativeRate)
	}
	return nil
}

// IsZoneKey reports whether key is a single digit.
func IsZoneKey(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
