package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cart-pricing-service/internal/domain/dto"
	"github.com/guttosm/cart-pricing-service/internal/domain/model"
	"github.com/guttosm/cart-pricing-service/internal/i18n"
	"github.com/guttosm/cart-pricing-service/internal/logger"
	"github.com/guttosm/cart-pricing-service/internal/metrics"
	"github.com/guttosm/cart-pricing-service/internal/middleware"
	"github.com/guttosm/cart-pricing-service/internal/service"
	"github.com/guttosm/cart-pricing-service/internal/session"
)

// Session transition names used in metrics.
const (
	transitionCreate       = "create"
	transitionGet          = "get"
	transitionDelete       = "delete"
	transitionReplaceItems = "replace_items"
	transitionClearItems   = "clear_items"
	transitionQuantity     = "change_quantity"
	transitionRemoveItem   = "remove_item"
	transitionMode         = "set_mode"
	transitionPostalCode   = "enter_postal_code"
	transitionSavedAddress = "use_saved_address"
	transitionCheckout     = "checkout"
)

// SessionHandler serves the cart session routes. Every transition reprices
// the session and answers with its full view.
type SessionHandler struct {
	store      *session.Store
	calculator service.QuoteCalculator
	checkout   service.CheckoutService
	// enforceOwnership restricts customer sessions to the same authenticated customer.
	enforceOwnership bool
}

// NewSessionHandler creates a new SessionHandler instance.
func NewSessionHandler(store *session.Store, calculator service.QuoteCalculator, checkout service.CheckoutService, enforceOwnership bool) *SessionHandler {
	return &SessionHandler{
		store:            store,
		calculator:       calculator,
		checkout:         checkout,
		enforceOwnership: enforceOwnership,
	}
}

// Create handles POST /api/sessions requests.
//
// @Summary      Open a cart session
// @Description  Opens a cart pricing session in pickup mode with the cart fetched from the storefront backend. When authenticated, the customer id comes from the token.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token"
// @Param        request body dto.CreateSessionRequest true "Initial cart"
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionView} "Session created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindJSON[dto.CreateSessionRequest](builder)
	if !ok {
		return
	}

	customerID := middleware.GetCustomerID(c)
	if customerID == "" && !h.enforceOwnership {
		customerID = req.CustomerID
	}

	state, err := h.store.Create(customerID, req.Items.ToModel())
	if err != nil {
		metrics.RecordSessionTransition(transitionCreate, "error")
		builder.Fail(err)
		return
	}
	metrics.RecordSessionTransition(transitionCreate, "ok")

	if ls := loggingServiceFrom(c); ls != nil {
		middleware.AuditLog(ls, c, middleware.ActionCreateSession, "Cart session opened", map[string]interface{}{
			"session_id": state.ID,
			"items":      len(state.Cart.Items),
		})
	}

	builder.SuccessCreated(newPresenter(i18n.GetLocale(c)).session(state))
}

// Get handles GET /api/sessions/:id requests.
//
// @Summary      Get a cart session
// @Description  Returns the session view, repriced against the tariff currently in effect.
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      403 {object} dto.ErrorResponse "Session belongs to another customer"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	h.transition(c, transitionGet, func(s *session.Session) error {
		s.Reprice(h.calculator)
		return nil
	})
}

// Delete handles DELETE /api/sessions/:id requests.
//
// @Summary      Discard a cart session
// @Tags         Sessions
// @Param        id path string true "Session ID"
// @Success      204 "Session discarded"
// @Failure      403 {object} dto.ErrorResponse "Session belongs to another customer"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.store.Do(id, h.guard(c, nil)); err != nil {
		metrics.RecordSessionTransition(transitionDelete, "error")
		NewResponseBuilder(c).Fail(err)
		return
	}
	h.store.Delete(id)
	metrics.RecordSessionTransition(transitionDelete, "ok")
	c.Status(http.StatusNoContent)
}

// ReplaceItems handles PUT /api/sessions/:id/items requests.
//
// @Summary      Replace the cart snapshot
// @Description  Replaces the cart with a snapshot re-fetched from the storefront backend and requotes.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.ReplaceItemsRequest true "Cart snapshot"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id}/items [put]
func (h *SessionHandler) ReplaceItems(c *gin.Context) {
	req, ok := bindJSON[dto.ReplaceItemsRequest](NewResponseBuilder(c))
	if !ok {
		return
	}
	items := req.Items.ToModel()
	h.transition(c, transitionReplaceItems, func(s *session.Session) error {
		return s.ReplaceItems(items, h.calculator)
	})
}

// ClearItems handles DELETE /api/sessions/:id/items requests.
//
// @Summary      Clear the cart
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id}/items [delete]
func (h *SessionHandler) ClearItems(c *gin.Context) {
	h.transition(c, transitionClearItems, func(s *session.Session) error {
		s.Clear()
		return nil
	})
}

// UpdateQuantity handles PATCH /api/sessions/:id/items/:item_id requests.
//
// @Summary      Change a line quantity
// @Description  Sets the quantity of one line. Quantities outside 1 to 9999 are rejected; removing a line is a separate call.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        item_id path string true "Line item ID"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid quantity"
// @Failure      404 {object} dto.ErrorResponse "Session or item not found"
// @Router       /api/sessions/{id}/items/{item_id} [patch]
func (h *SessionHandler) UpdateQuantity(c *gin.Context) {
	var req dto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidQuantity, err)
		return
	}
	itemID := c.Param("item_id")
	h.transition(c, transitionQuantity, func(s *session.Session) error {
		return s.ChangeQuantity(itemID, req.Quantity, h.calculator)
	})
}

// RemoveItem handles DELETE /api/sessions/:id/items/:item_id requests.
//
// @Summary      Remove a line
// @Tags         Sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        item_id path string true "Line item ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      404 {object} dto.ErrorResponse "Session or item not found"
// @Router       /api/sessions/{id}/items/{item_id} [delete]
func (h *SessionHandler) RemoveItem(c *gin.Context) {
	itemID := c.Param("item_id")
	h.transition(c, transitionRemoveItem, func(s *session.Session) error {
		return s.RemoveItem(itemID, h.calculator)
	})
}

// SetFulfillment handles PUT /api/sessions/:id/fulfillment requests.
//
// @Summary      Choose pickup or delivery
// @Description  RETIRADA (pickup) waives shipping. ENTREGA (delivery) quotes with the postal code in effect, or leaves shipping pending.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.FulfillmentRequest true "Fulfillment mode"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid mode"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id}/fulfillment [put]
func (h *SessionHandler) SetFulfillment(c *gin.Context) {
	var req dto.FulfillmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidMode, err)
		return
	}
	mode, err := req.ParsedMode()
	if err != nil {
		NewResponseBuilder(c).Fail(err)
		return
	}
	h.transition(c, transitionMode, func(s *session.Session) error {
		s.SetMode(mode, h.calculator)
		return nil
	})
}

// EnterPostalCode handles PUT /api/sessions/:id/postal-code requests.
//
// @Summary      Type a postal code
// @Description  Switches to manual address entry. A partial postal code is accepted and leaves shipping pending until it is complete.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.PostalCodeRequest true "Postal code, possibly partial"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id}/postal-code [put]
func (h *SessionHandler) EnterPostalCode(c *gin.Context) {
	req, ok := bindJSON[dto.PostalCodeRequest](NewResponseBuilder(c))
	if !ok {
		return
	}
	h.transition(c, transitionPostalCode, func(s *session.Session) error {
		s.EnterPostalCode(req.PostalCode, h.calculator)
		return nil
	})
}

// UseSavedAddress handles PUT /api/sessions/:id/saved-address requests.
//
// @Summary      Use the saved address
// @Description  Records the customer's stored address, selects it and requotes immediately when delivering.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.SavedAddressRequest true "Saved address"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionView} "Session state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid postal code"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Router       /api/sessions/{id}/saved-address [put]
func (h *SessionHandler) UseSavedAddress(c *gin.Context) {
	req, ok := bindJSON[dto.SavedAddressRequest](NewResponseBuilder(c))
	if !ok {
		return
	}
	addr := req.Address.ToModel()
	h.transition(c, transitionSavedAddress, func(s *session.Session) error {
		return s.UseSavedAddress(addr, h.calculator)
	})
}

// Checkout handles POST /api/sessions/:id/checkout requests.
//
// @Summary      Hand the cart to checkout
// @Description  Validates the priced session and returns the payload for the order and payment flow. Delivery needs a resolved quote and a complete address whose postal code matches the quote. Supports idempotency via Idempotency-Key header.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CheckoutRequest true "Checkout confirmation"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutView} "Checkout handoff"
// @Failure      404 {object} dto.ErrorResponse "Session not found or expired"
// @Failure      409 {object} dto.ErrorResponse "Session changed since it was priced"
// @Failure      422 {object} dto.ErrorResponse "Cart cannot be checked out"
// @Router       /api/sessions/{id}/checkout [post]
func (h *SessionHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindJSON[dto.CheckoutRequest](builder)
	if !ok {
		return
	}

	checkoutReq := service.CheckoutRequest{Phone: req.Phone, Revision: req.Revision}
	if req.Address != nil {
		addr := req.Address.ToModel()
		checkoutReq.Address = &addr
	}

	var handoff *model.CheckoutHandoff
	_, err := h.store.Do(c.Param("id"), h.guard(c, func(s *session.Session) error {
		s.Reprice(h.calculator)
		var err error
		handoff, err = h.checkout.Checkout(c.Request.Context(), s.Snapshot(), checkoutReq)
		return err
	}))

	ls := loggingServiceFrom(c)
	if err != nil {
		metrics.RecordSessionTransition(transitionCheckout, "error")
		if ls != nil {
			middleware.AuditLogError(ls, c, middleware.ActionCheckout, "Checkout rejected", err, map[string]interface{}{
				"session_id": c.Param("id"),
			})
		}
		builder.Fail(err)
		return
	}
	metrics.RecordSessionTransition(transitionCheckout, "ok")
	sessionLog := logger.ForSession(handoff.SessionID, handoff.CustomerID)
	sessionLog.Info().
		Str("mode", string(handoff.Mode)).
		Str("total", amount(handoff.Total)).
		Int("revision", handoff.Revision).
		Msg("checkout handoff prepared")

	if ls != nil {
		middleware.AuditLog(ls, c, middleware.ActionCheckout, "Checkout handoff", map[string]interface{}{
			"session_id": handoff.SessionID,
			"mode":       string(handoff.Mode),
			"total":      amount(handoff.Total),
		})
	}

	builder.SuccessOK(checkoutView(handoff))
}

// transition runs fn on the session under its lock and answers with the new view.
func (h *SessionHandler) transition(c *gin.Context, name string, fn func(*session.Session) error) {
	builder := NewResponseBuilder(c)

	state, err := h.store.Do(c.Param("id"), h.guard(c, fn))
	if err != nil {
		metrics.RecordSessionTransition(name, "error")
		builder.Fail(err)
		return
	}
	metrics.RecordSessionTransition(name, "ok")

	builder.SuccessOK(newPresenter(i18n.GetLocale(c)).session(state))
}

// guard wraps fn with the ownership check. A nil fn only checks ownership.
func (h *SessionHandler) guard(c *gin.Context, fn func(*session.Session) error) func(*session.Session) error {
	customerID := middleware.GetCustomerID(c)
	return func(s *session.Session) error {
		if h.enforceOwnership && !s.OwnedBy(customerID) {
			return errSessionForbidden
		}
		if fn == nil {
			return nil
		}
		return fn(s)
	}
}

// loggingServiceFrom returns the audit sink placed on the context by the router.
func loggingServiceFrom(c *gin.Context) service.LoggingService {
	if v, exists := c.Get("logging_service"); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}
