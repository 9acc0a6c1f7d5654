package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/session"
)

var (
	// ErrEmptyCart is returned when checking out a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrPhoneRequired is returned when the customer has no phone number.
	ErrPhoneRequired = errors.New("customer phone is required")
	// ErrInvalidCheckoutItem is returned when an item has a zero price or quantity.
	ErrInvalidCheckoutItem = errors.New("every item needs a positive price and quantity")
	// ErrShippingPending is returned for delivery without a resolved quote.
	ErrShippingPending = errors.New("shipping has not been quoted")
	// ErrAddressIncomplete is returned when a delivery address lacks required fields.
	ErrAddressIncomplete = errors.New("delivery address is incomplete")
	// ErrAddressMismatch is returned when the address postal code differs from the quoted one.
	ErrAddressMismatch = errors.New("address postal code does not match the quoted postal code")
	// ErrStaleRevision is returned when the client priced an older version of the session.
	ErrStaleRevision = errors.New("session changed since it was priced")
)

// CheckoutRequest carries what the customer confirms at checkout.
type CheckoutRequest struct {
	Phone   string
	Address *model.Address
	// Revision, when non-zero, must match the session revision.
	Revision int
}

// CheckoutService validates a priced session and builds the order handoff.
type CheckoutService interface {
	Checkout(ctx context.Context, state session.State, req CheckoutRequest) (*model.CheckoutHandoff, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct{}

// NewCheckoutService creates a checkout service.
func NewCheckoutService() CheckoutService {
	return &CheckoutServiceImpl{}
}

// Checkout validates state and req and returns the payload handed to the order flow.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, state session.State, req CheckoutRequest) (*model.CheckoutHandoff, error) {
	handoff, err := s.checkout(ctx, state, req)
	if err != nil {
		metrics.RecordCheckout("rejected")
		return nil, err
	}
	metrics.RecordCheckout("accepted")
	return handoff, nil
}

func (s *CheckoutServiceImpl) checkout(ctx context.Context, state session.State, req CheckoutRequest) (*model.CheckoutHandoff, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if req.Revision != 0 && req.Revision != state.Revision {
		return nil, ErrStaleRevision
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	if state.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	products := make([]model.CheckoutProduct, 0, len(state.Cart.Items))
	for _, item := range state.Cart.Items {
		if !item.UnitPrice.IsPositive() || item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCheckoutItem, item.ID)
		}
		products = append(products, model.CheckoutProduct{
			ProductID: item.ID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	handoff := &model.CheckoutHandoff{
		SessionID:   state.ID,
		CustomerID:  state.CustomerID,
		Phone:       phone,
		Products:    products,
		Mode:        state.Selection.Mode,
		ShippingFee: state.Summary.ShippingFee,
		Subtotal:    state.Summary.Subtotal,
		Total:       state.Summary.Total,
		Revision:    state.Revision,
	}

	if !state.Selection.Mode.IsDelivery() {
		return handoff, nil
	}

	if state.Summary.ShippingStatus != model.ShippingQuoted {
		return nil, ErrShippingPending
	}

	addr, err := deliveryAddress(state, req.Address)
	if err != nil {
		return nil, err
	}
	handoff.Address = addr
	handoff.ZoneKey = state.Quote.ZoneKey

	return handoff, nil
}

// deliveryAddress picks the address to ship to and checks it against the quote.
func deliveryAddress(state session.State, submitted *model.Address) (*model.Address, error) {
	var addr model.Address
	switch {
	case submitted != nil:
		addr = *submitted
	case state.AddressSource == model.AddressSaved && state.SavedAddress != nil:
		addr = *state.SavedAddress
	default:
		return nil, fmt.Errorf("%w: postal_code, street, number, neighborhood, city, state", ErrAddressIncomplete)
	}

	if missing := addr.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrAddressIncomplete, strings.Join(missing, ", "))
	}
	if pricing.NormalizePostalCode(addr.PostalCode) != state.Quote.Basis.PostalCode {
		return nil, ErrAddressMismatch
	}

	addr.PostalCode = pricing.FormatPostalCode(addr.PostalCode)
	return &addr, nil
}
