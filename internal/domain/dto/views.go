package dto

import "time"

// QuoteView is a shipping quote as shown on the cart page.
//
// @Description Shipping quote
type QuoteView struct {
	Available     bool   `json:"available" example:"true"`
	Status        string `json:"status" example:"quoted"`
	Fee           string `json:"fee" example:"19.70"`
	FeeLabel      string `json:"fee_label" example:"R$ 19,70"`
	ZoneKey       string `json:"zone_key,omitempty" example:"3"`
	PostalCode    string `json:"postal_code,omitempty" example:"30130-000"`
	TariffVersion int    `json:"tariff_version" example:"0"`
} // @name QuoteView

// SummaryView is the priced cart with display labels.
//
// @Description Cart pricing summary
type SummaryView struct {
	Subtotal       string `json:"subtotal" example:"99.80"`
	SubtotalLabel  string `json:"subtotal_label" example:"R$ 99,80"`
	ShippingFee    string `json:"shipping_fee" example:"19.70"`
	ShippingStatus string `json:"shipping_status" example:"quoted"`
	ShippingLabel  string `json:"shipping_label" example:"R$ 19,70"`
	Total          string `json:"total" example:"119.50"`
	TotalLabel     string `json:"total_label" example:"R$ 119,50"`
	ItemCount      int    `json:"item_count" example:"2"`
	ItemCountLabel string `json:"item_count_label" example:"2 itens"`
} // @name SummaryView

// LineItemView is one cart line with its line total.
type LineItemView struct {
	ID             string `json:"id" example:"whey-900g"`
	Name           string `json:"name,omitempty" example:"Whey Protein 900g"`
	UnitPrice      string `json:"unit_price" example:"49.90"`
	UnitPriceLabel string `json:"unit_price_label" example:"R$ 49,90"`
	Quantity       int    `json:"quantity" example:"2"`
	LineTotal      string `json:"line_total" example:"99.80"`
	LineTotalLabel string `json:"line_total_label" example:"R$ 99,80"`
} // @name LineItemView

// SessionView is the full state of a cart session.
//
// @Description Cart session state
type SessionView struct {
	ID              string         `json:"id" example:"3f1c2a9e-4b7d-4e8a-9a1b-2c3d4e5f6a7b"`
	Items           []LineItemView `json:"items"`
	Mode            string         `json:"mode" example:"ENTREGA"`
	PostalCode      string         `json:"postal_code,omitempty" example:"30130-000"`
	AddressSource   string         `json:"address_source,omitempty" example:"manual"`
	SavedAddress    *AddressView   `json:"saved_address,omitempty"`
	Quote           QuoteView      `json:"quote"`
	Summary         SummaryView    `json:"summary"`
	CartCount       int            `json:"cart_count" example:"2"`
	CheckoutEnabled bool           `json:"checkout_enabled" example:"true"`
	Revision        int            `json:"revision" example:"3"`
	UpdatedAt       time.Time      `json:"updated_at"`
} // @name SessionView

// AddressView is a delivery address with a formatted postal code.
type AddressView struct {
	PostalCode   string `json:"postal_code" example:"30130-000"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
} // @name AddressView

// CheckoutProductView is one line of the checkout payload.
type CheckoutProductView struct {
	ProductID string `json:"product_id" example:"whey-900g"`
	UnitPrice string `json:"unit_price" example:"49.90"`
	Quantity  int    `json:"quantity" example:"2"`
} // @name CheckoutProductView

// CheckoutView is the handoff payload for the order and payment flow.
//
// @Description Checkout handoff
type CheckoutView struct {
	SessionID   string                `json:"session_id"`
	CustomerID  string                `json:"customer_id,omitempty"`
	Phone       string                `json:"phone" example:"31999990000"`
	Products    []CheckoutProductView `json:"products"`
	Mode        string                `json:"mode" example:"ENTREGA"`
	ShippingFee string                `json:"shipping_fee" example:"19.70"`
	Subtotal    string                `json:"subtotal" example:"99.80"`
	Total       string                `json:"total" example:"119.50"`
	Address     *AddressView          `json:"address,omitempty"`
	ZoneKey     string                `json:"zone_key,omitempty" example:"3"`
	Revision    int                   `json:"revision" example:"3"`
} // @name CheckoutView

// ZoneRateView is one zone's rate as decimal strings.
type ZoneRateView struct {
	Base    string `json:"base" example:"18.00"`
	PerItem string `json:"per_item" example:"1.20"`
} // @name ZoneRateView

// TariffView is a tariff version.
//
// @Description Shipping tariff
type TariffView struct {
	Version    int                     `json:"version" example:"2"`
	Active     bool                    `json:"active" example:"true"`
	Default    bool                    `json:"default" example:"false"`
	Zones      map[string]ZoneRateView `json:"zones"`
	Fallback   ZoneRateView            `json:"fallback"`
	UnitWeight string                  `json:"unit_weight" example:"0.5"`
	WeightRate string                  `json:"weight_rate" example:"0.5"`
	MinimumFee string                  `json:"minimum_fee" example:"15.00"`
	CreatedAt  *time.Time              `json:"created_at,omitempty"`
	CreatedBy  string                  `json:"created_by,omitempty"`
} // @name TariffView
