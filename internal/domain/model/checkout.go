package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AddressSource tells where the delivery postal code came from.
type AddressSource string

const (
	// AddressNone means no address has been provided yet.
	AddressNone AddressSource = ""
	// AddressSaved is the customer's stored address.
	AddressSaved AddressSource = "saved"
	// AddressManual is an address typed in on the cart page.
	AddressManual AddressSource = "manual"
)

// Address is a Brazilian delivery address.
type Address struct {
	PostalCode   string `json:"postal_code" example:"30130-000"`
	Street       string `json:"street" example:"Av. Afonso Pena"`
	Number       string `json:"number" example:"1500"`
	Complement   string `json:"complement,omitempty" example:"Apto 12"`
	Neighborhood string `json:"neighborhood" example:"Centro"`
	City         string `json:"city" example:"Belo Horizonte"`
	State        string `json:"state" example:"MG"`
}

// MissingFields returns the JSON names of required fields that are blank.
// Complement is optional.
func (a Address) MissingFields() []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("postal_code", a.PostalCode)
	check("street", a.Street)
	check("number", a.Number)
	check("neighborhood", a.Neighborhood)
	check("city", a.City)
	check("state", a.State)
	return missing
}

// IsComplete reports whether every required field is filled.
func (a Address) IsComplete() bool {
	return len(a.MissingFields()) == 0
}

// CheckoutProduct is a line of the checkout payload.
type CheckoutProduct struct {
	ProductID string          `json:"product_id"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// CheckoutHandoff is what the cart hands to the order/payment flow.
type CheckoutHandoff struct {
	SessionID   string            `json:"session_id"`
	CustomerID  string            `json:"customer_id,omitempty"`
	Phone       string            `json:"phone"`
	Products    []CheckoutProduct `json:"products"`
	Mode        FulfillmentMode   `json:"mode"`
	ShippingFee decimal.Decimal   `json:"shipping_fee"`
	Subtotal    decimal.Decimal   `json:"subtotal"`
	Total       decimal.Decimal   `json:"total"`
	Address     *Address          `json:"address,omitempty"`
	ZoneKey     string            `json:"zone_key,omitempty"`
	Revision    int               `json:"revision"`
}
