package http

import (
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/repository"
	"github.com/guttosm/cart-pricing-service/internal/session"
	"github.com/shopspring/decimal"
)

// presenter renders domain values as display views for one locale.
type presenter struct {
	locale     string
	translator *i18n.Translator
}

func newPresenter(locale string) presenter {
	return presenter{locale: locale, translator: i18n.GetTranslator()}
}

func (p presenter) money(d decimal.Decimal) string {
	return i18n.FormatMoney(d, p.locale)
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(pricing.CurrencyPlaces)
}

func (p presenter) quote(q model.ShippingQuote) dto.QuoteView {
	view := dto.QuoteView{
		Available:     q.Available,
		Status:        string(model.ShippingPending),
		Fee:           amount(q.Fee),
		FeeLabel:      p.translator.Translate(i18n.LabelShippingPending, p.locale),
		TariffVersion: q.Basis.TariffVersion,
	}
	if q.Available {
		view.Status = string(model.ShippingQuoted)
		view.FeeLabel = p.money(q.Fee)
		view.ZoneKey = q.ZoneKey
		view.PostalCode = pricing.FormatPostalCode(q.Basis.PostalCode)
	}
	return view
}

func (p presenter) summary(s model.PricingSummary) dto.SummaryView {
	return dto.SummaryView{
		Subtotal:       amount(s.Subtotal),
		SubtotalLabel:  p.money(s.Subtotal),
		ShippingFee:    amount(s.ShippingFee),
		ShippingStatus: string(s.ShippingStatus),
		ShippingLabel:  p.shippingLabel(s),
		Total:          amount(s.Total),
		TotalLabel:     p.money(s.Total),
		ItemCount:      s.ItemCount,
		ItemCountLabel: p.translator.Plural(i18n.LabelItemCount, p.locale, s.ItemCount),
	}
}

// shippingLabel is "Grátis" for pickup and empty carts, "A calcular" while pending.
func (p presenter) shippingLabel(s model.PricingSummary) string {
	switch s.ShippingStatus {
	case model.ShippingPending:
		return p.translator.Translate(i18n.LabelShippingPending, p.locale)
	case model.ShippingQuoted:
		return p.money(s.ShippingFee)
	default:
		return p.translator.Translate(i18n.LabelShippingFree, p.locale)
	}
}

func (p presenter) items(cart model.CartSnapshot) []dto.LineItemView {
	views := make([]dto.LineItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		lineTotal := item.LineTotal().Round(pricing.CurrencyPlaces)
		views = append(views, dto.LineItemView{
			ID:             item.ID,
			Name:           item.Name,
			UnitPrice:      amount(item.UnitPrice),
			UnitPriceLabel: p.money(item.UnitPrice),
			Quantity:       item.Quantity,
			LineTotal:      amount(lineTotal),
			LineTotalLabel: p.money(lineTotal),
		})
	}
	return views
}

func (p presenter) session(state session.State) dto.SessionView {
	view := dto.SessionView{
		ID:              state.ID,
		Items:           p.items(state.Cart),
		Mode:            string(state.Selection.Mode),
		PostalCode:      pricing.FormatPostalCode(state.Selection.PostalCode),
		AddressSource:   string(state.AddressSource),
		Quote:           p.quote(state.Quote),
		Summary:         p.summary(state.Summary),
		CartCount:       state.Cart.TotalQuantity(),
		CheckoutEnabled: state.CheckoutEnabled,
		Revision:        state.Revision,
		UpdatedAt:       state.UpdatedAt,
	}
	if state.SavedAddress != nil {
		view.SavedAddress = addressView(state.SavedAddress)
	}
	return view
}

func addressView(a *model.Address) *dto.AddressView {
	if a == nil {
		return nil
	}
	return &dto.AddressView{
		PostalCode:   pricing.FormatPostalCode(a.PostalCode),
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
	}
}

func checkoutView(h *model.CheckoutHandoff) dto.CheckoutView {
	products := make([]dto.CheckoutProductView, 0, len(h.Products))
	for _, p := range h.Products {
		products = append(products, dto.CheckoutProductView{
			ProductID: p.ProductID,
			UnitPrice: amount(p.UnitPrice),
			Quantity:  p.Quantity,
		})
	}
	return dto.CheckoutView{
		SessionID:   h.SessionID,
		CustomerID:  h.CustomerID,
		Phone:       h.Phone,
		Products:    products,
		Mode:        string(h.Mode),
		ShippingFee: amount(h.ShippingFee),
		Subtotal:    amount(h.Subtotal),
		Total:       amount(h.Total),
		Address:     addressView(h.Address),
		ZoneKey:     h.ZoneKey,
		Revision:    h.Revision,
	}
}

func zoneRateView(r model.ZoneRate) dto.ZoneRateView {
	return dto.ZoneRateView{Base: amount(r.Base), PerItem: amount(r.PerItem)}
}

// tariffView renders a tariff; the built-in default has version 0 and no document.
func tariffView(t model.Tariff, doc *repository.TariffDocument) dto.TariffView {
	zones := make(map[string]dto.ZoneRateView, len(t.Zones))
	for key, rate := range t.Zones {
		zones[key] = zoneRateView(rate)
	}
	view := dto.TariffView{
		Version:    t.Version,
		Active:     doc == nil || doc.Active,
		Default:    doc == nil && t.Version == 0,
		Zones:      zones,
		Fallback:   zoneRateView(t.Fallback),
		UnitWeight: t.UnitWeight.String(),
		WeightRate: t.WeightRate.String(),
		MinimumFee: amount(t.MinimumFee),
	}
	if doc != nil {
		createdAt := doc.CreatedAt
		view.CreatedAt = &createdAt
		view.CreatedBy = doc.CreatedBy
	}
	return view
}
