package model

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ZoneRate is the base fee and the per-distinct-line increment for a zone.
type ZoneRate struct {
	Base    decimal.Decimal `json:"base" swaggertype:"number" example:"25.00"`
	PerItem decimal.Decimal `json:"per_item" swaggertype:"number" example:"2.00"`
}

// NewZoneRate builds a ZoneRate from float literals. Intended for constants.
func NewZoneRate(base, perItem float64) ZoneRate {
	return ZoneRate{
		Base:    decimal.NewFromFloat(base),
		PerItem: decimal.NewFromFloat(perItem),
	}
}

// Tariff is the full shipping price table. Zones are keyed by the first
// postal-code digit; digits without an entry use Fallback.
type Tariff struct {
	Zones      map[string]ZoneRate `json:"zones"`
	Fallback   ZoneRate            `json:"fallback"`
	UnitWeight decimal.Decimal     `json:"unit_weight" swaggertype:"number" example:"0.5"`
	WeightRate decimal.Decimal     `json:"weight_rate" swaggertype:"number" example:"0.5"`
	MinimumFee decimal.Decimal     `json:"minimum_fee" swaggertype:"number" example:"15.00"`
	Version    int                 `json:"version"`
}

// RateFor returns the zone rate for zoneKey and whether it came from the zone table.
func (t Tariff) RateFor(zoneKey string) (ZoneRate, bool) {
	if rate, ok := t.Zones[zoneKey]; ok {
		return rate, true
	}
	return t.Fallback, false
}

// ZoneKeys returns the configured zone keys in ascending order.
func (t Tariff) ZoneKeys() []string {
	keys := make([]string, 0, len(t.Zones))
	for k := range t.Zones {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy that does not share the zone map.
func (t Tariff) Clone() Tariff {
	zones := make(map[string]ZoneRate, len(t.Zones))
	for k, v := range t.Zones {
		zones[k] = v
	}
	t.Zones = zones
	return t
}
