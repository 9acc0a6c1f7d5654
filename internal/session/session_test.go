package session

import (
	"testing"

	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id, price string, qty int) model.LineItem {
	return model.LineItem{ID: id, UnitPrice: decimal.RequireFromString(price), Quantity: qty}
}

var quoter = pricing.TariffQuoter(pricing.DefaultTariff())

func newSession(t *testing.T, items ...model.LineItem) *Session {
	t.Helper()
	s, err := New("s-1", "", items)
	require.NoError(t, err)
	return s
}

func TestNew_ValidatesItems(t *testing.T) {
	tests := []struct {
		name    string
		items   []model.LineItem
		wantErr error
	}{
		{name: "empty cart is valid", items: nil},
		{name: "valid items", items: []model.LineItem{line("a", "10.00", 1), line("b", "0.00", 2)}},
		{name: "zero quantity", items: []model.LineItem{line("a", "10.00", 0)}, wantErr: ErrInvalidQuantity},
		{name: "quantity over the cap", items: []model.LineItem{line("a", "10.00", model.MaxQuantity+1)}, wantErr: ErrInvalidQuantity},
		{name: "negative price", items: []model.LineItem{line("a", "-1.00", 1)}, wantErr: ErrInvalidItem},
		{name: "missing id", items: []model.LineItem{line("", "1.00", 1)}, wantErr: ErrInvalidItem},
		{name: "duplicate id", items: []model.LineItem{line("a", "1.00", 1), line("a", "2.00", 1)}, wantErr: ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("id", "", tt.items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.ModePickup, s.Selection().Mode)
		})
	}
}

func TestSession_PickupByDefault(t *testing.T) {
	s := newSession(t, line("a", "49.90", 2))

	summary := s.Summary()

	assert.Equal(t, model.ShippingWaived, summary.ShippingStatus)
	assert.Equal(t, "99.80", summary.Total.StringFixed(2))
	assert.True(t, s.CheckoutEnabled())
}

func TestSession_DeliveryFlow(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1), line("b", "20.00", 3))

	s.SetMode(model.ModeDelivery, quoter)
	assert.Equal(t, model.ShippingPending, s.Summary().ShippingStatus, "no postal code yet")

	s.EnterPostalCode("3013", quoter)
	assert.Equal(t, model.ShippingPending, s.Summary().ShippingStatus, "partial postal code")
	assert.Equal(t, "70.00", s.Summary().Total.StringFixed(2))

	s.EnterPostalCode("30130-000", quoter)
	summary := s.Summary()
	assert.Equal(t, model.ShippingQuoted, summary.ShippingStatus)
	assert.Equal(t, "21.40", summary.ShippingFee.StringFixed(2))
	assert.Equal(t, "91.40", summary.Total.StringFixed(2))

	s.SetMode(model.ModePickup, quoter)
	summary = s.Summary()
	assert.Equal(t, model.ShippingWaived, summary.ShippingStatus)
	assert.True(t, summary.ShippingFee.IsZero())
	assert.False(t, s.Snapshot().Quote.Available, "pickup drops the quote")

	s.SetMode(model.ModeDelivery, quoter)
	assert.Equal(t, "21.40", s.Summary().ShippingFee.StringFixed(2), "re-entering delivery re-quotes with known postal code")
}

func TestSession_QuantityChangeRequotes(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1), line("b", "20.00", 3))
	s.SetMode(model.ModeDelivery, quoter)
	s.EnterPostalCode("30130000", quoter)

	require.NoError(t, s.ChangeQuantity("b", 5, quoter))

	summary := s.Summary()
	assert.Equal(t, 6, summary.ItemCount)
	assert.Equal(t, "110.00", summary.Subtotal.StringFixed(2))
	// 18.00 + 1.20*2 + 0.5*6*0.5
	assert.Equal(t, "21.90", summary.ShippingFee.StringFixed(2))
}

func TestSession_ChangeQuantityErrors(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1))
	rev := s.Snapshot().Revision

	assert.ErrorIs(t, s.ChangeQuantity("a", 0, quoter), ErrInvalidQuantity)
	assert.ErrorIs(t, s.ChangeQuantity("a", model.MaxQuantity+1, quoter), ErrInvalidQuantity)
	assert.ErrorIs(t, s.ChangeQuantity("zzz", 2, quoter), ErrItemNotFound)
	assert.Equal(t, rev, s.Snapshot().Revision, "failed transitions leave state untouched")
	assert.Equal(t, 1, s.Summary().ItemCount)
}

func TestSession_RemoveItem(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1), line("b", "20.00", 3))
	s.SetMode(model.ModeDelivery, quoter)
	s.EnterPostalCode("30130000", quoter)

	require.NoError(t, s.RemoveItem("a", quoter))
	// 18.00 + 1.20*1 + 0.5*3*0.5
	assert.Equal(t, "19.95", s.Summary().ShippingFee.StringFixed(2))

	require.NoError(t, s.RemoveItem("b", quoter))
	summary := s.Summary()
	assert.Equal(t, model.ShippingNone, summary.ShippingStatus)
	assert.True(t, summary.Total.IsZero())
	assert.False(t, s.CheckoutEnabled())

	assert.ErrorIs(t, s.RemoveItem("b", quoter), ErrItemNotFound)
}

func TestSession_SavedAddressThenManualEntry(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1), line("b", "20.00", 3))
	s.SetMode(model.ModeDelivery, quoter)

	require.NoError(t, s.UseSavedAddress(model.Address{PostalCode: "50000-000", Street: "Rua A"}, quoter))
	assert.Equal(t, "36.00", s.Summary().ShippingFee.StringFixed(2))
	assert.Equal(t, model.AddressSaved, s.Snapshot().AddressSource)

	s.EnterPostalCode("", quoter)
	assert.Equal(t, model.ShippingPending, s.Summary().ShippingStatus, "manual entry resets the quote")
	assert.Equal(t, model.AddressManual, s.Snapshot().AddressSource)

	require.NoError(t, s.UseSavedAddress(*s.Snapshot().SavedAddress, quoter))
	assert.Equal(t, "36.00", s.Summary().ShippingFee.StringFixed(2))

	assert.ErrorIs(t, s.UseSavedAddress(model.Address{Street: "Rua B"}, quoter), ErrAddressRequired)
}

func TestSession_ReplaceItemsAndClear(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1))

	err := s.ReplaceItems([]model.LineItem{line("x", "5.00", 0)}, quoter)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	require.NoError(t, s.ReplaceItems([]model.LineItem{line("x", "5.00", 2), line("y", "1.50", 1)}, quoter))
	assert.Equal(t, "11.50", s.Summary().Subtotal.StringFixed(2))

	s.Clear()
	assert.Equal(t, model.EmptySummary(), s.Summary())
}

func TestSession_RepriceOnTariffChange(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1))
	s.SetMode(model.ModeDelivery, quoter)
	s.EnterPostalCode("50000000", quoter)

	assert.False(t, s.Reprice(quoter), "same tariff keeps the quote")
	rev := s.Snapshot().Revision

	tariff := pricing.DefaultTariff()
	tariff.Version = 2
	tariff.Zones["5"] = model.NewZoneRate(10, 1)

	assert.True(t, s.Reprice(pricing.TariffQuoter(tariff)))
	assert.Equal(t, rev+1, s.Snapshot().Revision)
	assert.Equal(t, "15.00", s.Summary().ShippingFee.StringFixed(2))
	assert.Equal(t, 2, s.Snapshot().Quote.Basis.TariffVersion)
}

func TestSession_SnapshotIsIsolated(t *testing.T) {
	s := newSession(t, line("a", "10.00", 1))
	require.NoError(t, s.UseSavedAddress(model.Address{PostalCode: "30130000"}, quoter))

	snap := s.Snapshot()
	snap.Cart.Items[0].Quantity = 99
	snap.SavedAddress.PostalCode = "00000000"

	assert.Equal(t, 1, s.Summary().ItemCount)
	assert.Equal(t, "30130000", s.PostalCode())
}

func TestSession_OwnedBy(t *testing.T) {
	anon, err := New("a", "", nil)
	require.NoError(t, err)
	owned, err := New("b", "cust-1", nil)
	require.NoError(t, err)

	assert.True(t, anon.OwnedBy("anyone"))
	assert.True(t, owned.OwnedBy("cust-1"))
	assert.False(t, owned.OwnedBy("cust-2"))
}

func TestSession_Idempotent(t *testing.T) {
	s := newSession(t, line("a", "19.99", 3))
	s.SetMode(model.ModeDelivery, quoter)
	s.EnterPostalCode("90000000", quoter)

	assert.Equal(t, s.Summary(), s.Summary())
}
