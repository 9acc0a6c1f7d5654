// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidMode is returned when mode is neither pickup nor delivery.
	ErrInvalidMode = &ValidationError{
		Field:   "mode",
		Message: "must be RETIRADA or ENTREGA",
	}
)

// LineItemRequest is one cart line as sent by the storefront.
//
// @Description A cart line item
type LineItemRequest struct {
	// ID is the product identifier.
	ID string `json:"id" binding:"required" example:"whey-900g"`
	// Name is the display name.
	Name string `json:"name,omitempty" example:"Whey Protein 900g"`
	// UnitPrice accepts either a JSON number or a decimal string.
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"49.90"`
	// Quantity must be between 1 and model.MaxQuantity.
	Quantity int `json:"quantity" binding:"required,gte=1,lte=9999" example:"2" minimum:"1" maximum:"9999"`
} // @name LineItemRequest

// Items is a list of line items with shared validation.
type Items []LineItemRequest

// Validate rejects negative prices, out of range quantities and duplicate ids.
func (items Items) Validate() error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.UnitPrice.IsNegative() {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].unit_price", i),
				Message: "must not be negative",
			}
		}
		if item.Quantity < 1 || item.Quantity > model.MaxQuantity {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: fmt.Sprintf("must be between 1 and %d", model.MaxQuantity),
			}
		}
		if _, dup := seen[item.ID]; dup {
			return &ValidationError{
				Field:   fmt.Sprintf("items[%d].id", i),
				Message: "duplicate item id",
			}
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}

// ToModel converts the request lines into domain line items.
func (items Items) ToModel() []model.LineItem {
	out := make([]model.LineItem, len(items))
	for i, item := range items {
		out[i] = model.LineItem{
			ID:        item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		}
	}
	return out
}

// QuoteRequest asks for a shipping estimate.
// An incomplete postal code is not an error: the quote comes back unavailable.
//
// @Description Request a shipping quote for a cart
type QuoteRequest struct {
	Items      Items  `json:"items" binding:"required,min=1,dive"`
	PostalCode string `json:"postal_code" example:"30130-000"`
} // @name QuoteRequest

// Validate performs custom validation on the request.
func (r *QuoteRequest) Validate() error {
	return r.Items.Validate()
}

// SummaryRequest asks for a full cart summary.
//
// @Description Request a cart pricing summary
type SummaryRequest struct {
	Items      Items  `json:"items" binding:"dive"`
	Mode       string `json:"mode" example:"ENTREGA"`
	PostalCode string `json:"postal_code,omitempty" example:"30130-000"`
} // @name SummaryRequest

// Validate performs custom validation on the request.
func (r *SummaryRequest) Validate() error {
	if _, ok := model.ParseFulfillmentMode(r.Mode); !ok && r.Mode != "" {
		return ErrInvalidMode
	}
	return r.Items.Validate()
}

// Selection returns the fulfillment selection; an empty mode means pickup.
func (r *SummaryRequest) Selection() model.FulfillmentSelection {
	mode, ok := model.ParseFulfillmentMode(r.Mode)
	if !ok || !mode.IsDelivery() {
		return model.Pickup()
	}
	return model.Delivery(r.PostalCode)
}

// CreateSessionRequest opens a cart session.
//
// @Description Open a cart pricing session
type CreateSessionRequest struct {
	Items Items `json:"items" binding:"dive"`
	// CustomerID is ignored when the caller is authenticated.
	CustomerID string `json:"customer_id,omitempty" example:"cust-42"`
} // @name CreateSessionRequest

// Validate checks the initial cart lines.
func (r *CreateSessionRequest) Validate() error {
	return r.Items.Validate()
}

// ReplaceItemsRequest replaces the session cart with a fresh snapshot.
//
// @Description Replace the cart snapshot
type ReplaceItemsRequest struct {
	Items Items `json:"items" binding:"dive"`
} // @name ReplaceItemsRequest

func (r *ReplaceItemsRequest) Validate() error {
	return r.Items.Validate()
}

// UpdateQuantityRequest changes one line's quantity.
//
// @Description Change a line item quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1,lte=9999" example:"3" minimum:"1" maximum:"9999"`
} // @name UpdateQuantityRequest

// FulfillmentRequest selects pickup or delivery.
//
// @Description Select the fulfillment mode
type FulfillmentRequest struct {
	Mode string `json:"mode" binding:"required" example:"ENTREGA"`
} // @name FulfillmentRequest

// ParsedMode returns the parsed mode or ErrInvalidMode.
func (r *FulfillmentRequest) ParsedMode() (model.FulfillmentMode, error) {
	mode, ok := model.ParseFulfillmentMode(r.Mode)
	if !ok {
		return "", ErrInvalidMode
	}
	return mode, nil
}

// PostalCodeRequest carries a manually typed postal code, possibly partial.
//
// @Description Manual postal code entry
type PostalCodeRequest struct {
	PostalCode string `json:"postal_code" example:"30130-000"`
} // @name PostalCodeRequest

// AddressRequest is a delivery address.
//
// @Description Delivery address
type AddressRequest struct {
	PostalCode   string `json:"postal_code" binding:"required,postalcode" example:"30130-000"`
	Street       string `json:"street,omitempty" example:"Av. Afonso Pena"`
	Number       string `json:"number,omitempty" example:"1500"`
	Complement   string `json:"complement,omitempty" example:"Apto 12"`
	Neighborhood string `json:"neighborhood,omitempty" example:"Centro"`
	City         string `json:"city,omitempty" example:"Belo Horizonte"`
	State        string `json:"state,omitempty" binding:"omitempty,len=2" example:"MG"`
} // @name AddressRequest

// ToModel converts the request into a domain address.
func (r AddressRequest) ToModel() model.Address {
	return model.Address{
		PostalCode:   r.PostalCode,
		Street:       r.Street,
		Number:       r.Number,
		Complement:   r.Complement,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		State:        r.State,
	}
}

// SavedAddressRequest selects the customer's stored address.
//
// @Description Use the customer's saved address
type SavedAddressRequest struct {
	Address AddressRequest `json:"address" binding:"required"`
} // @name SavedAddressRequest

// CheckoutRequest confirms the cart for checkout.
//
// @Description Checkout confirmation
type CheckoutRequest struct {
	Phone   string          `json:"phone" example:"31999990000"`
	Address *AddressRequest `json:"address,omitempty"`
	// Revision is the session revision the client priced; 0 skips the check.
	Revision int `json:"revision,omitempty" example:"4"`
} // @name CheckoutRequest

// ZoneRateRequest is one zone's rate.
type ZoneRateRequest struct {
	Base    decimal.Decimal `json:"base" swaggertype:"string" example:"18.00"`
	PerItem decimal.Decimal `json:"per_item" swaggertype:"string" example:"1.20"`
} // @name ZoneRateRequest

// ToModel converts the request into a domain zone rate.
func (r ZoneRateRequest) ToModel() model.ZoneRate {
	return model.ZoneRate{Base: r.Base, PerItem: r.PerItem}
}

// TariffRequest is a new tariff version. Omitted scalar fields take the
// built-in defaults supplied by the caller of ToModel.
//
// @Description New shipping tariff version
type TariffRequest struct {
	Zones      map[string]ZoneRateRequest `json:"zones" binding:"required,min=1,dive,keys,zonekey,endkeys"`
	Fallback   *ZoneRateRequest           `json:"fallback,omitempty"`
	UnitWeight *decimal.Decimal           `json:"unit_weight,omitempty" swaggertype:"string" example:"0.5"`
	WeightRate *decimal.Decimal           `json:"weight_rate,omitempty" swaggertype:"string" example:"0.5"`
	MinimumFee *decimal.Decimal           `json:"minimum_fee,omitempty" swaggertype:"string" example:"15.00"`
} // @name TariffRequest

// ToModel builds the tariff, filling omitted fields from defaults.
func (r *TariffRequest) ToModel(defaults model.Tariff) model.Tariff {
	t := model.Tariff{
		Zones:      make(map[string]model.ZoneRate, len(r.Zones)),
		Fallback:   defaults.Fallback,
		UnitWeight: defaults.UnitWeight,
		WeightRate: defaults.WeightRate,
		MinimumFee: defaults.MinimumFee,
	}
	for key, rate := range r.Zones {
		t.Zones[key] = rate.ToModel()
	}
	if r.Fallback != nil {
		t.Fallback = r.Fallback.ToModel()
	}
	if r.UnitWeight != nil {
		t.UnitWeight = *r.UnitWeight
	}
	if r.WeightRate != nil {
		t.WeightRate = *r.WeightRate
	}
	if r.MinimumFee != nil {
		t.MinimumFee = *r.MinimumFee
	}
	return t
}
