package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/pricing"
	"github.com/guttosm/cart-pricing-service/internal/service"
)

// Handler provides the stateless pricing routes.
type Handler struct {
	calculator service.QuoteCalculator
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.QuoteCalculator) *Handler {
	return &Handler{calculator: calculator}
}

// Quote handles POST /api/shipping/quote requests.
//
// @Summary      Estimate shipping
// @Description  Estimates the delivery fee for a cart and postal code using the active tariff. An incomplete postal code is not an error: the quote comes back with available=false and the "to be calculated" label.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "pt, en or nl"
// @Param        request body dto.QuoteRequest true "Cart and postal code"
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteView} "Shipping quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/shipping/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindJSON[dto.QuoteRequest](builder)
	if !ok {
		return
	}

	cart := model.NewCartSnapshot(req.Items.ToModel())
	quote := h.calculator.Quote(cart, req.PostalCode)

	builder.SuccessOK(newPresenter(i18n.GetLocale(c)).quote(quote))
}

// Summary handles POST /api/cart/summary requests.
//
// @Summary      Price a cart
// @Description  Computes subtotal, shipping and total for a cart. Pickup waives shipping; delivery with an incomplete postal code leaves shipping pending and out of the total. Labels are formatted as Brazilian reais.
// @Tags         Pricing
// @Accept       json
// @Produce      json
// @Param        Accept-Language header string false "pt, en or nl"
// @Param        request body dto.SummaryRequest true "Cart and fulfillment selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.SummaryView} "Cart summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/cart/summary [post]
func (h *Handler) Summary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindJSON[dto.SummaryRequest](builder)
	if !ok {
		return
	}

	cart := model.NewCartSnapshot(req.Items.ToModel())
	selection := req.Selection()

	quote := model.UnavailableQuote()
	if selection.Mode.IsDelivery() && !cart.IsEmpty() {
		quote = h.calculator.Quote(cart, selection.PostalCode)
	}

	builder.SuccessOK(newPresenter(i18n.GetLocale(c)).summary(pricing.ComputeSummary(cart, selection, quote)))
}
